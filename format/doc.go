// Package format reads and writes Value trees as JSON and YAML.
//
// # Usage
//
//	// Read a document, choosing the format by file extension
//	v, err := format.ReadFile("config.yaml")
//
//	// Write it back as JSON
//	err = format.Write(os.Stdout, v, format.JSONFormat)
//
// JSON integers are kept exactly, whatever their size. A document which
// does not parse yields a *ParseError naming its origin; failures to read
// or write yield an *IOError.
//
// # Related Packages
//
//   - github.com/signadot/vtree/ir - the Value tree
//   - github.com/signadot/vtree/mergeop - JSON patches over Values
package format
