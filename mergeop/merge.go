package mergeop

import (
	"github.com/signadot/vtree/ir"
)

var mergeSym = register(&mergeSymbol{name: mergeName})

// Merge merges its argument into the document with ir.Merge.
func Merge() Symbol { return mergeSym }

const mergeName name = "merge"

type mergeSymbol struct {
	name
}

func (s mergeSymbol) Instance(arg ir.Value) (Op, error) {
	return &mergeOp{op: op{name: s.name, arg: arg}}, nil
}

type mergeOp struct {
	op
}

func (m mergeOp) Patch(doc ir.Value) (ir.Value, error) {
	res := doc.Clone()
	if err := res.Merge(m.arg); err != nil {
		return ir.Value{}, err
	}
	return res, nil
}
