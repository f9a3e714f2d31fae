package mergeop

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
)

var jPatchSym = register(&jPatchSymbol{name: jPatchName})

// JSONPatch applies an RFC 6902 patch given as an array of operations.
func JSONPatch() Symbol { return jPatchSym }

const jPatchName name = "json-patch"

type jPatchSymbol struct {
	name
}

func (s jPatchSymbol) Instance(arg ir.Value) (Op, error) {
	d, err := format.WriteJSON(arg)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.name, arg: arg}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc ir.Value) (ir.Value, error) {
	if debug.Merge() {
		debug.Log("json-patch", "ops", len(jp.ops))
	}
	d, err := format.WriteJSON(doc)
	if err != nil {
		return ir.Value{}, err
	}
	out, err := jp.ops.Apply(d)
	if err != nil {
		return ir.Value{}, err
	}
	return format.ReadJSON(out)
}

// ApplyJSONPatch applies the raw RFC 6902 patch document patch to doc.
func ApplyJSONPatch(doc ir.Value, patch []byte) (ir.Value, error) {
	pv, err := format.ReadJSON(patch, format.Origin("json patch"))
	if err != nil {
		return ir.Value{}, err
	}
	o, err := JSONPatch().Instance(pv)
	if err != nil {
		return ir.Value{}, err
	}
	return o.Patch(doc)
}
