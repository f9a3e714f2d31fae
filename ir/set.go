package ir

import (
	"math/big"

	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/path"
)

// MaxPad bounds how many Nil elements SetPath adds to reach a positive index
// past the end of an array.
const MaxPad = 1 << 20

// Set parses p and stores nv there. See SetPath.
func (v *Value) Set(p string, nv Value) (Value, error) {
	pp, err := path.Parse(p)
	if err != nil {
		return Value{}, err
	}
	return v.SetPath(pp, nv)
}

// SetPath stores nv at p and returns the value previously in that slot, or
// Nil if the slot was created.
//
// Intermediate nodes are created on demand. An identifier applied to
// anything but a Map replaces that node with an empty Map, and an index
// applied to anything but an Array replaces it with a one element Array;
// the previous content of a replaced node is discarded. Positive indices
// past the end pad the array with Nil up to the index, adding fewer than
// MaxPad elements. Negative indices count from the end of the array present
// at that point.
//
// The whole path is checked before anything is changed: if a negative index
// does not resolve or a positive one needs MaxPad or more padding, SetPath
// returns a *RangeError and v is untouched.
func (v *Value) SetPath(p path.Path, nv Value) (Value, error) {
	if err := checkSet(*v, p); err != nil {
		return Value{}, err
	}
	old := setIn(v, p, nv)
	if debug.Set() {
		debug.Log("set", "path", p.String(), "old", Describe(old), "new", Describe(nv))
	}
	return old, nil
}

// checkSet simulates SetPath without mutating anything.
func checkSet(root Value, p path.Path) error {
	cur, fresh := root, false
	for i, n := range p {
		switch n.Kind {
		case path.IdentKind:
			if fresh || cur.Type != MapType {
				fresh = true
				continue
			}
			child, ok := cur.Map[n.Ident]
			if !ok {
				fresh = true
				continue
			}
			cur = child
		case path.IndexKind:
			size := 1
			if !fresh && cur.Type == ArrayType {
				size = len(cur.Array)
			} else {
				fresh = true
			}
			j, ok := resolveIndex(n.Index, size)
			if !ok || j-size >= MaxPad {
				return &RangeError{Value: big.NewInt(int64(n.Index)), Path: p[:i+1]}
			}
			if fresh {
				continue
			}
			if j >= len(cur.Array) {
				fresh = true
				continue
			}
			cur = cur.Array[j]
		}
	}
	return nil
}

func setIn(cur *Value, p path.Path, nv Value) Value {
	if len(p) == 0 {
		old := *cur
		*cur = nv
		return old
	}
	n := p[0]
	if n.Kind == path.IdentKind {
		if cur.Type != MapType {
			*cur = EmptyMap()
		} else if cur.Map == nil {
			cur.Map = map[string]Value{}
		}
		child := cur.Map[n.Ident]
		old := setIn(&child, p[1:], nv)
		cur.Map[n.Ident] = child
		return old
	}
	if cur.Type != ArrayType {
		*cur = Value{Type: ArrayType, Array: []Value{{}}}
	}
	// checked by checkSet
	i, _ := resolveIndex(n.Index, len(cur.Array))
	if i >= len(cur.Array) {
		cur.Array = append(cur.Array, make([]Value, i+1-len(cur.Array))...)
	}
	return setIn(&cur.Array[i], p[1:], nv)
}

// Delete removes the map entry or array element at p and returns it. Array
// elements after it shift down. It reports false, changing nothing, when p
// does not resolve or is the root.
func (v *Value) Delete(p path.Path) (Value, bool) {
	last, ok := p.Last()
	if !ok {
		return Value{}, false
	}
	parent, ok := v.Lookup(p.Parent())
	if !ok {
		return Value{}, false
	}
	switch {
	case last.Kind == path.IdentKind && parent.Type == MapType:
		old, ok := parent.Map[last.Ident]
		if !ok {
			return Value{}, false
		}
		delete(parent.Map, last.Ident)
		return old, true
	case last.Kind == path.IndexKind && parent.Type == ArrayType:
		i, ok := resolveIndex(last.Index, len(parent.Array))
		if !ok || i >= len(parent.Array) {
			return Value{}, false
		}
		old := parent.Array[i]
		arr := append(parent.Array[:i:i], parent.Array[i+1:]...)
		if _, err := v.SetPath(p.Parent(), Value{Type: ArrayType, Array: arr}); err != nil {
			return Value{}, false
		}
		return old, true
	}
	return Value{}, false
}
