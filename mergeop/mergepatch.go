package mergeop

import (
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
)

var mPatchSym = register(&mPatchSymbol{name: mPatchName})

// MergePatch applies an RFC 7386 merge patch. Unlike Merge, null values in
// the patch delete keys and arrays are replaced whole.
func MergePatch() Symbol { return mPatchSym }

const mPatchName name = "merge-patch"

type mPatchSymbol struct {
	name
}

func (s mPatchSymbol) Instance(arg ir.Value) (Op, error) {
	d, err := format.WriteJSON(arg)
	if err != nil {
		return nil, err
	}
	return &mPatchOp{patch: d, op: op{name: s.name, arg: arg}}, nil
}

type mPatchOp struct {
	op
	patch []byte
}

func (mp mPatchOp) Patch(doc ir.Value) (ir.Value, error) {
	if debug.Merge() {
		debug.Log("merge-patch", "size", len(mp.patch))
	}
	d, err := format.WriteJSON(doc)
	if err != nil {
		return ir.Value{}, err
	}
	out, err := jsonpatch.MergePatch(d, mp.patch)
	if err != nil {
		return ir.Value{}, err
	}
	return format.ReadJSON(out)
}

// CreateMergePatch returns the merge patch turning from into to.
func CreateMergePatch(from, to ir.Value) (ir.Value, error) {
	a, err := format.WriteJSON(from)
	if err != nil {
		return ir.Value{}, err
	}
	b, err := format.WriteJSON(to)
	if err != nil {
		return ir.Value{}, err
	}
	d, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return ir.Value{}, err
	}
	return format.ReadJSON(d)
}
