package mergeop

import (
	"fmt"
	"slices"

	"github.com/signadot/vtree/ir"
)

// Op is an instantiated patch operation.
type Op interface {
	// Patch returns doc with the operation applied. doc is not modified.
	Patch(doc ir.Value) (ir.Value, error)
	String() string
}

// Symbol names an operation and instantiates it with an argument.
type Symbol interface {
	String() string
	Instance(arg ir.Value) (Op, error)
}

type name string

func (n name) String() string { return string(n) }

type op struct {
	name name
	arg  ir.Value
}

func (o op) String() string { return o.name.String() }

var symbols = map[string]Symbol{}

func register(s Symbol) Symbol {
	symbols[s.String()] = s
	return s
}

// Lookup returns the symbol called name.
func Lookup(name string) (Symbol, error) {
	s, ok := symbols[name]
	if !ok {
		return nil, fmt.Errorf("no such patch op %q", name)
	}
	return s, nil
}

// Symbols returns the names of all operations in sorted order.
func Symbols() []string {
	res := make([]string, 0, len(symbols))
	for k := range symbols {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Apply applies ops to doc in order.
func Apply(doc ir.Value, ops ...Op) (ir.Value, error) {
	var err error
	for _, o := range ops {
		doc, err = o.Patch(doc)
		if err != nil {
			return ir.Value{}, fmt.Errorf("%s: %w", o, err)
		}
	}
	return doc, nil
}

// ParsePatch instantiates a patch document: an array is a JSON patch, a
// map whose single key names an operation is that operation applied to
// the key's value, and any other map is a merge patch.
func ParsePatch(patch ir.Value) (Op, error) {
	if patch.Type == ir.ArrayType {
		return JSONPatch().Instance(patch)
	}
	if patch.Type == ir.MapType && len(patch.Map) == 1 {
		for k, v := range patch.Map {
			if sym, ok := symbols[k]; ok {
				return sym.Instance(v)
			}
		}
	}
	return MergePatch().Instance(patch)
}
