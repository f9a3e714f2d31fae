package mergeop

import (
	"errors"
	"fmt"

	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/ir"
)

// ErrNoMatch is returned by the match op when the document does not match.
var ErrNoMatch = errors.New("no match")

var (
	matchSym = register(&matchSymbol{name: matchName})
	trimSym  = register(&trimSymbol{name: trimName})
)

// MatchOp checks the document against its argument with Match and fails
// with ErrNoMatch when it does not match. The document passes through.
func MatchOp() Symbol { return matchSym }

// TrimOp reduces the document to the parts its argument mentions, see
// Trim.
func TrimOp() Symbol { return trimSym }

const (
	matchName name = "match"
	trimName  name = "trim"
)

// Match reports whether doc matches pattern. Nil matches anything, a Map
// matches a Map having at least its keys with matching values, an Array
// matches an Array of the same length element by element, and other
// values must be equal.
func Match(doc, pattern ir.Value) bool {
	if debug.Merge() {
		debug.Log("match", "type", pattern.Type.String())
	}
	if pattern.Type == ir.NilType {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.MapType:
		return matchMap(doc, pattern)
	case ir.ArrayType:
		return matchArray(doc, pattern)
	}
	return ir.Equal(doc, pattern)
}

func matchMap(doc, pattern ir.Value) bool {
	for k, pv := range pattern.Map {
		dv, ok := doc.Map[k]
		if !ok || !Match(dv, pv) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern ir.Value) bool {
	if len(doc.Array) != len(pattern.Array) {
		return false
	}
	for i := range doc.Array {
		if !Match(doc.Array[i], pattern.Array[i]) {
			return false
		}
	}
	return true
}

// Trim filters doc to the entries present in pattern. Map keys absent from
// pattern are dropped. For arrays, each pattern element keeps the first
// unused doc element it matches, trimmed.
func Trim(pattern, doc ir.Value) ir.Value {
	switch {
	case pattern.Type == ir.MapType && doc.Type == ir.MapType:
		res := make(map[string]ir.Value, len(pattern.Map))
		for k, dv := range doc.Map {
			pv, ok := pattern.Map[k]
			if !ok {
				continue
			}
			res[k] = Trim(pv, dv)
		}
		return ir.FromEntries(res)
	case pattern.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		var res []ir.Value
		used := make([]bool, len(doc.Array))
		for _, pe := range pattern.Array {
			for i, de := range doc.Array {
				if used[i] || !Match(de, pe) {
					continue
				}
				res = append(res, Trim(pe, de))
				used[i] = true
				break
			}
		}
		return ir.FromValues(res...)
	}
	return doc.Clone()
}

type matchSymbol struct {
	name
}

func (s matchSymbol) Instance(arg ir.Value) (Op, error) {
	return &matchOp{op: op{name: s.name, arg: arg}}, nil
}

type matchOp struct {
	op
}

func (m matchOp) Patch(doc ir.Value) (ir.Value, error) {
	if !Match(doc, m.arg) {
		return ir.Value{}, fmt.Errorf("%w: %s", ErrNoMatch, ir.Describe(doc))
	}
	return doc.Clone(), nil
}

type trimSymbol struct {
	name
}

func (s trimSymbol) Instance(arg ir.Value) (Op, error) {
	return &trimOp{op: op{name: s.name, arg: arg}}, nil
}

type trimOp struct {
	op
}

func (t trimOp) Patch(doc ir.Value) (ir.Value, error) {
	return Trim(t.arg, doc), nil
}
