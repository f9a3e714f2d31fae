package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal. Floats compare
// with ==, so NaN is not equal to itself.
func Equal(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.bigInt().Cmp(b.bigInt()) == 0
	case FloatType:
		return a.Float == b.Float
	case StringType:
		return a.Str == b.Str
	case ArrayType:
		return slices.EqualFunc(a.Array, b.Array, Equal)
	case MapType:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for k, av := range a.Map {
			bv, ok := b.Map[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return true
}

// Equal reports whether v and o are structurally equal.
func (v Value) Equal(o Value) bool {
	return Equal(v, o)
}

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b Value) int {
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType:
		return a.bigInt().Cmp(b.bigInt())
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.Str, b.Str)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return slices.CompareFunc(a.Array, b.Array, Compare)
	case MapType:
		return compareMaps(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Nil < Bool < Integer < Float < String < Array < Map
func rank(t Type) int {
	switch t {
	case NilType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case MapType:
		return 6
	}
	return 100
}

// compareMaps compares entries in key order.
func compareMaps(a, b Value) int {
	ak, bk := a.Keys(), b.Keys()
	for i := range min(len(ak), len(bk)) {
		if c := strings.Compare(ak[i], bk[i]); c != 0 {
			return c
		}
		if c := Compare(a.Map[ak[i]], b.Map[bk[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ak), len(bk))
}
