package mergeop

import (
	"fmt"

	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

var (
	setSym    = register(&setSymbol{name: setName})
	deleteSym = register(&deleteSymbol{name: deleteName})
)

// Set stores values by path. Its argument maps path strings to the values
// to store, applied in sorted path order.
func Set() Symbol { return setSym }

// Delete removes the nodes at the paths listed in its argument, a string
// or an array of strings. Paths which do not resolve are ignored.
func Delete() Symbol { return deleteSym }

const (
	setName    name = "set"
	deleteName name = "delete"
)

type setSymbol struct {
	name
}

type setEntry struct {
	at  path.Path
	val ir.Value
}

func (s setSymbol) Instance(arg ir.Value) (Op, error) {
	if arg.Type != ir.MapType {
		return nil, fmt.Errorf("%s op takes a map of paths, got %s", s, ir.Describe(arg))
	}
	entries := make([]setEntry, 0, len(arg.Map))
	for _, k := range arg.Keys() {
		p, err := path.Parse(k)
		if err != nil {
			return nil, err
		}
		entries = append(entries, setEntry{at: p, val: arg.Map[k]})
	}
	return &setOp{entries: entries, op: op{name: s.name, arg: arg}}, nil
}

type setOp struct {
	op
	entries []setEntry
}

func (so setOp) Patch(doc ir.Value) (ir.Value, error) {
	res := doc.Clone()
	for _, e := range so.entries {
		if _, err := res.SetPath(e.at, e.val.Clone()); err != nil {
			return ir.Value{}, err
		}
	}
	return res, nil
}

type deleteSymbol struct {
	name
}

func (s deleteSymbol) Instance(arg ir.Value) (Op, error) {
	var strs []string
	switch arg.Type {
	case ir.StringType:
		strs = []string{arg.Str}
	case ir.ArrayType:
		for _, e := range arg.Array {
			str, err := e.AsString()
			if err != nil {
				return nil, fmt.Errorf("%s op: %w", s, err)
			}
			strs = append(strs, str)
		}
	default:
		return nil, fmt.Errorf("%s op takes a path or a list of paths, got %s", s, ir.Describe(arg))
	}
	paths := make([]path.Path, len(strs))
	for i, str := range strs {
		p, err := path.Parse(str)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return &deleteOp{paths: paths, op: op{name: s.name, arg: arg}}, nil
}

type deleteOp struct {
	op
	paths []path.Path
}

func (do deleteOp) Patch(doc ir.Value) (ir.Value, error) {
	res := doc.Clone()
	for _, p := range do.paths {
		res.Delete(p)
	}
	return res, nil
}
