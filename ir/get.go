package ir

import (
	"github.com/signadot/vtree/path"
)

// Lookup walks p from v. It reports false when an identifier meets a
// non-Map, an index meets a non-Array, a key is missing or an index is out
// of bounds. The empty path resolves to v itself.
func (v Value) Lookup(p path.Path) (Value, bool) {
	cur := v
	for _, n := range p {
		switch n.Kind {
		case path.IdentKind:
			if cur.Type != MapType {
				return Value{}, false
			}
			child, ok := cur.Map[n.Ident]
			if !ok {
				return Value{}, false
			}
			cur = child
		case path.IndexKind:
			if cur.Type != ArrayType {
				return Value{}, false
			}
			i, ok := resolveIndex(n.Index, len(cur.Array))
			if !ok || i >= len(cur.Array) {
				return Value{}, false
			}
			cur = cur.Array[i]
		}
	}
	return cur, true
}

// Get parses p, walks it from v and coerces the value found to T.
//
// A path which does not resolve gives ok == false and a nil error. An error
// is returned when p does not parse or when coercion fails.
func Get[T any](v Value, p string) (res T, ok bool, err error) {
	pp, err := path.Parse(p)
	if err != nil {
		return res, false, err
	}
	return GetPath[T](v, pp)
}

// GetPath is Get with a parsed path.
func GetPath[T any](v Value, p path.Path) (res T, ok bool, err error) {
	found, ok := v.Lookup(p)
	if !ok {
		return res, false, nil
	}
	res, err = As[T](found)
	if err != nil {
		if te, isTE := err.(*TypeError); isTE {
			te.Path = p
		}
		if re, isRE := err.(*RangeError); isRE {
			re.Path = p
		}
		return res, false, err
	}
	return res, true, nil
}

// resolveIndex maps a possibly negative index onto a container of length n.
// Negative indices count from the end. It reports false when a negative
// index reaches before the start; positive indices are returned unchecked.
func resolveIndex(i, n int) (int, bool) {
	if i >= 0 {
		return i, true
	}
	j := n + i
	if j < 0 {
		return 0, false
	}
	return j, true
}
