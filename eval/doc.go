// Package eval evaluates expr-lang expressions against a Value tree.
//
// The environment of an expression is the root Map's entries converted with
// ir.Value.ToAny, plus these functions:
//
//	get(path)    the value at path in the root, or nil
//	has(path)    whether path resolves in the root
//	whereami()   the path of the leaf being expanded (Expand only)
//	getenv(name) an OS environment variable
//
// Expand rewrites string leaves holding $[expr] references. A leaf which is
// exactly one reference is replaced by the expression's value; otherwise each
// reference is interpolated as text. Inside a reference, \] is a literal ]
// and \\ a literal backslash. A reference with no closing ] is left as is.
package eval
