package gomap

import (
	"fmt"
	"math"
	"math/big"

	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// ToValue encodes v into a Value tree.
func ToValue(v any, opts ...EncodeOption) (ir.Value, error) {
	enc := NewValueEncoder()
	if err := Walk(v, enc, opts...); err != nil {
		return ir.Value{}, err
	}
	return enc.Value()
}

type frameKind int

const (
	rootFrame frameKind = iota
	structFrame
	fieldFrame
	seqFrame
	elemFrame
	mapFrame
	entryFrame
	variantFrame
)

var frameNames = [...]string{"root", "struct", "field", "sequence", "element", "map", "entry", "variant"}

func (k frameKind) String() string { return frameNames[k] }

// keyFrame is one level of the key stack: the path every primitive at this
// level is written to, and for sequences the index of the next element.
type keyFrame struct {
	kind  frameKind
	at    path.Path
	index int
}

// ValueEncoder is an Encoder building a Value. Every primitive it receives
// is stored with ir.Value.SetPath at the path formed by the enclosing
// fields, entries and elements; containers are created empty when they
// begin so that empty ones survive.
type ValueEncoder struct {
	root  ir.Value
	stack []keyFrame
}

func NewValueEncoder() *ValueEncoder {
	return &ValueEncoder{stack: []keyFrame{{kind: rootFrame, at: path.Path{}}}}
}

// Value returns the tree built so far. It fails if a container is still
// open.
func (e *ValueEncoder) Value() (ir.Value, error) {
	if len(e.stack) != 1 {
		top := e.top()
		return ir.Value{}, &MarshalError{
			FieldPath: top.at.String(),
			Message:   fmt.Sprintf("unterminated %s", top.kind),
		}
	}
	return e.root, nil
}

func (e *ValueEncoder) top() *keyFrame {
	return &e.stack[len(e.stack)-1]
}

func (e *ValueEncoder) push(kind frameKind, at path.Path) {
	e.stack = append(e.stack, keyFrame{kind: kind, at: at})
}

func (e *ValueEncoder) pop(kind frameKind) error {
	top := e.top()
	if top.kind != kind {
		return &MarshalError{
			FieldPath: top.at.String(),
			Message:   fmt.Sprintf("end of %s inside %s", kind, top.kind),
		}
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

func (e *ValueEncoder) expect(kind frameKind, call string) (*keyFrame, error) {
	top := e.top()
	if top.kind != kind {
		return nil, &MarshalError{
			FieldPath: top.at.String(),
			Message:   fmt.Sprintf("%s inside %s", call, top.kind),
		}
	}
	return top, nil
}

func (e *ValueEncoder) set(v ir.Value) error {
	top := e.top()
	switch top.kind {
	case structFrame, seqFrame, mapFrame:
		return &MarshalError{
			FieldPath: top.at.String(),
			Message:   fmt.Sprintf("value %s directly inside %s", ir.Describe(v), top.kind),
		}
	}
	if _, err := e.root.SetPath(top.at, v); err != nil {
		return &MarshalError{FieldPath: top.at.String(), Err: err}
	}
	if debug.Encode() {
		debug.Log("encode", "path", top.at.String(), "value", ir.Describe(v))
	}
	return nil
}

func (e *ValueEncoder) EncodeNil() error { return e.set(ir.Nil()) }
func (e *ValueEncoder) EncodeBool(b bool) error { return e.set(ir.FromBool(b)) }
func (e *ValueEncoder) EncodeInt(i int64) error { return e.set(ir.FromInt(i)) }
func (e *ValueEncoder) EncodeFloat(f float64) error { return e.set(ir.FromFloat(f)) }
func (e *ValueEncoder) EncodeString(s string) error { return e.set(ir.FromString(s)) }

func (e *ValueEncoder) EncodeUint(u uint64) error {
	if u > math.MaxInt64 {
		return &MarshalError{
			FieldPath: e.top().at.String(),
			Message:   fmt.Sprintf("unsigned integer %d too large", u),
		}
	}
	return e.set(ir.FromUint(u))
}

func (e *ValueEncoder) encodeBigInt(i *big.Int) error {
	return e.set(ir.FromBigInt(i))
}

// EncodeUnitVariant stores the variant name as a string.
func (e *ValueEncoder) EncodeUnitVariant(_, variant string) error {
	return e.set(ir.FromString(variant))
}

// BeginVariant stores a map with the variant name as its single key; the
// payload goes under that key.
func (e *ValueEncoder) BeginVariant(_, variant string) error {
	if err := e.set(ir.EmptyMap()); err != nil {
		return err
	}
	e.push(variantFrame, e.top().at.Append(path.Ident(variant)))
	return nil
}

func (e *ValueEncoder) EndVariant() error { return e.pop(variantFrame) }

func (e *ValueEncoder) BeginStruct(string, int) error {
	if err := e.set(ir.EmptyMap()); err != nil {
		return err
	}
	e.push(structFrame, e.top().at)
	return nil
}

func (e *ValueEncoder) BeginField(name string) error {
	top, err := e.expect(structFrame, "field "+name)
	if err != nil {
		return err
	}
	e.push(fieldFrame, top.at.Append(path.Ident(name)))
	return nil
}

func (e *ValueEncoder) EndField() error { return e.pop(fieldFrame) }
func (e *ValueEncoder) EndStruct() error { return e.pop(structFrame) }

func (e *ValueEncoder) BeginSeq(int) error {
	if err := e.set(ir.EmptyArray()); err != nil {
		return err
	}
	e.push(seqFrame, e.top().at)
	return nil
}

func (e *ValueEncoder) BeginElem() error {
	top, err := e.expect(seqFrame, "element")
	if err != nil {
		return err
	}
	i := top.index
	top.index++
	e.push(elemFrame, top.at.Append(path.Index(i)))
	return nil
}

func (e *ValueEncoder) EndElem() error { return e.pop(elemFrame) }
func (e *ValueEncoder) EndSeq() error { return e.pop(seqFrame) }

func (e *ValueEncoder) BeginMap(int) error {
	if err := e.set(ir.EmptyMap()); err != nil {
		return err
	}
	e.push(mapFrame, e.top().at)
	return nil
}

func (e *ValueEncoder) BeginEntry(key any) error {
	top, err := e.expect(mapFrame, "entry")
	if err != nil {
		return err
	}
	k, err := mapKey(key)
	if err != nil {
		if me, ok := err.(*MarshalError); ok {
			me.FieldPath = top.at.String()
		}
		return err
	}
	e.push(entryFrame, top.at.Append(path.Ident(k)))
	return nil
}

func (e *ValueEncoder) EndEntry() error { return e.pop(entryFrame) }
func (e *ValueEncoder) EndMap() error { return e.pop(mapFrame) }
