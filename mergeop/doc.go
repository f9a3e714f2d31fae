// Package mergeop provides named patch operations over Value trees.
//
// Each operation is a Symbol which, given an argument, yields an Op:
//
//	sym, _ := mergeop.Lookup("json-patch")
//	op, err := sym.Instance(patch)
//	out, err := op.Patch(doc)
//
// The operations are merge (ir.Merge), json-patch (RFC 6902), merge-patch
// (RFC 7386), set, delete and pipe, which filters the document through an
// external command. The JSON based operations go through
// github.com/evanphx/json-patch.
package mergeop
