// Package path provides the path language used to address locations inside
// an ir.Value tree.
//
// A path is a '/'-separated sequence of segments anchored at the root. Each
// segment is an identifier optionally followed by one or more bracketed
// signed indices:
//   - "/" - the root itself (empty path)
//   - "/a" - map entry "a"
//   - "/a[0]" - element 0 of the array under "a"
//   - "/a[-1]" - last element of the array under "a"
//   - "/a[0][2]/b" - nested arrays, then a map entry
//   - "/[1]" - element 1 of a root array
//   - "/'a.b c'" - quoted identifier
//
// Bare identifiers consist of ASCII letters, digits, '_' and '-'. Anything
// else must be single quoted, with \' and \\ as the only escapes.
//
// Negative indices are never resolved here; they are resolved against the
// container length at the time a path is walked.
//
// # Usage
//
//	p, err := path.Parse("/a[0]/b/c[1]")
//	// p == path.Path{path.Ident("a"), path.Index(0), path.Ident("b"), path.Ident("c"), path.Index(1)}
//
//	child := p.Append(path.Ident("d"))
//	fmt.Println(child) // /a[0]/b/c[1]/d
//
// # Related Packages
//
//   - github.com/signadot/vtree/ir - the value tree and path engine
package path
