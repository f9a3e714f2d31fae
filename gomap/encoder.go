package gomap

import (
	"cmp"
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"slices"

	"github.com/signadot/vtree/ir"
)

// Encoder receives the structure of a Go value as a sequence of calls.
//
// Containers are bracketed by Begin and End calls. Within a struct each
// field is bracketed by BeginField and EndField, within a sequence each
// element by BeginElem and EndElem, and within a map each value by
// BeginEntry and EndEntry. Enum variants carrying data are bracketed by
// BeginVariant and EndVariant; variants without data are a single
// EncodeUnitVariant call.
type Encoder interface {
	EncodeNil() error
	EncodeBool(bool) error
	EncodeInt(int64) error
	EncodeUint(uint64) error
	EncodeFloat(float64) error
	EncodeString(string) error

	EncodeUnitVariant(enum, variant string) error
	BeginVariant(enum, variant string) error
	EndVariant() error

	BeginStruct(name string, n int) error
	BeginField(name string) error
	EndField() error
	EndStruct() error

	BeginSeq(n int) error
	BeginElem() error
	EndElem() error
	EndSeq() error

	BeginMap(n int) error
	BeginEntry(key any) error
	EndEntry() error
	EndMap() error
}

// Marshaler is implemented by types which drive an Encoder themselves.
type Marshaler interface {
	MarshalVT(Encoder) error
}

var (
	marshalerType     = reflect.TypeFor[Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	valueType         = reflect.TypeFor[ir.Value]()
	bigIntType        = reflect.TypeFor[big.Int]()
)

// Walk drives enc with the structure of v.
//
// Marshaler and encoding.TextMarshaler implementations take precedence.
// Pointers and interfaces are followed, nil ones encoding as nil. Structs
// encode their exported fields as described by the struct tags, maps with
// their keys in sorted order, and slices and arrays element by element. An
// ir.Value encodes its own tree. Reference cycles, channels, functions and
// complex numbers are a *MarshalError.
func Walk(v any, enc Encoder, opts ...EncodeOption) error {
	w := &walker{
		enc:     enc,
		cfg:     newEncodeConfig(opts),
		visited: map[uintptr]string{},
	}
	return w.walk(reflect.ValueOf(v), "")
}

type walker struct {
	enc     Encoder
	cfg     *encodeConfig
	visited map[uintptr]string
}

func (w *walker) walk(val reflect.Value, fieldPath string) error {
	if !val.IsValid() {
		return w.enc.EncodeNil()
	}
	typ := val.Type()
	if typ.Kind() == reflect.Interface {
		if val.IsNil() {
			return w.enc.EncodeNil()
		}
		return w.walk(val.Elem(), fieldPath)
	}
	switch {
	case typ == valueType:
		return encodeValue(w.enc, val.Interface().(ir.Value))
	case typ == bigIntType:
		bi := val.Interface().(big.Int)
		return w.encodeBigInt(&bi, fieldPath)
	case typ.Implements(marshalerType):
		if typ.Kind() == reflect.Pointer && val.IsNil() {
			return w.enc.EncodeNil()
		}
		return val.Interface().(Marshaler).MarshalVT(w.enc)
	case val.CanAddr() && reflect.PointerTo(typ).Implements(marshalerType):
		return val.Addr().Interface().(Marshaler).MarshalVT(w.enc)
	case typ.Kind() == reflect.Pointer && typ.Elem() == bigIntType:
		if val.IsNil() {
			return w.enc.EncodeNil()
		}
		return w.encodeBigInt(val.Interface().(*big.Int), fieldPath)
	case typ.Implements(textMarshalerType):
		if typ.Kind() == reflect.Pointer && val.IsNil() {
			return w.enc.EncodeNil()
		}
		return w.encodeText(val.Interface().(encoding.TextMarshaler), fieldPath)
	case val.CanAddr() && reflect.PointerTo(typ).Implements(textMarshalerType):
		return w.encodeText(val.Addr().Interface().(encoding.TextMarshaler), fieldPath)
	}

	switch typ.Kind() {
	case reflect.Bool:
		return w.enc.EncodeBool(val.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.enc.EncodeInt(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.enc.EncodeUint(val.Uint())
	case reflect.Float32, reflect.Float64:
		return w.enc.EncodeFloat(val.Float())
	case reflect.String:
		return w.enc.EncodeString(val.String())
	case reflect.Pointer:
		if val.IsNil() {
			return w.enc.EncodeNil()
		}
		ptr := val.Pointer()
		if prevPath, seen := w.visited[ptr]; seen {
			return &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		w.visited[ptr] = fieldPath
		defer delete(w.visited, ptr)
		return w.walk(val.Elem(), fieldPath)
	case reflect.Slice:
		if val.IsNil() {
			return w.enc.EncodeNil()
		}
		if val.Len() > 0 {
			ptr := val.Pointer()
			if prevPath, seen := w.visited[ptr]; seen {
				return &MarshalError{
					FieldPath: fieldPath,
					Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
				}
			}
			w.visited[ptr] = fieldPath
			defer delete(w.visited, ptr)
		}
		return w.walkSeq(val, fieldPath)
	case reflect.Array:
		return w.walkSeq(val, fieldPath)
	case reflect.Map:
		return w.walkMap(val, fieldPath)
	case reflect.Struct:
		return w.walkStruct(val, fieldPath)
	}
	return &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type: %s", typ),
	}
}

func (w *walker) walkSeq(val reflect.Value, fieldPath string) error {
	n := val.Len()
	if err := w.enc.BeginSeq(n); err != nil {
		return err
	}
	for i := range n {
		if err := w.enc.BeginElem(); err != nil {
			return err
		}
		if err := w.walk(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
		if err := w.enc.EndElem(); err != nil {
			return err
		}
	}
	return w.enc.EndSeq()
}

func (w *walker) walkMap(val reflect.Value, fieldPath string) error {
	if val.IsNil() {
		return w.enc.EncodeNil()
	}
	ptr := val.Pointer()
	if prevPath, seen := w.visited[ptr]; seen {
		return &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	w.visited[ptr] = fieldPath
	defer delete(w.visited, ptr)

	keys := val.MapKeys()
	slices.SortFunc(keys, compareKeys)
	if err := w.enc.BeginMap(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := w.enc.BeginEntry(k.Interface()); err != nil {
			return err
		}
		if err := w.walk(val.MapIndex(k), fmt.Sprintf("%s/%v", fieldPath, k)); err != nil {
			return err
		}
		if err := w.enc.EndEntry(); err != nil {
			return err
		}
	}
	return w.enc.EndMap()
}

func (w *walker) walkStruct(val reflect.Value, fieldPath string) error {
	fields := structFields(val.Type(), w.cfg.tag)
	present := make([]fieldInfo, 0, len(fields))
	for _, f := range fields {
		fv := val.FieldByIndex(f.index)
		if (f.omitEmpty || w.cfg.omitEmpty) && isEmptyValue(fv) {
			continue
		}
		present = append(present, f)
	}
	if err := w.enc.BeginStruct(val.Type().Name(), len(present)); err != nil {
		return err
	}
	for _, f := range present {
		if err := w.enc.BeginField(f.name); err != nil {
			return err
		}
		if err := w.walk(val.FieldByIndex(f.index), fieldPath+"/"+f.name); err != nil {
			return err
		}
		if err := w.enc.EndField(); err != nil {
			return err
		}
	}
	return w.enc.EndStruct()
}

func (w *walker) encodeText(tm encoding.TextMarshaler, fieldPath string) error {
	text, err := tm.MarshalText()
	if err != nil {
		return &MarshalError{FieldPath: fieldPath, Message: "MarshalText", Err: err}
	}
	return w.enc.EncodeString(string(text))
}

func (w *walker) encodeBigInt(i *big.Int, fieldPath string) error {
	if i.IsInt64() {
		return w.enc.EncodeInt(i.Int64())
	}
	if be, ok := w.enc.(bigIntEncoder); ok {
		return be.encodeBigInt(i)
	}
	if i.IsUint64() {
		return w.enc.EncodeUint(i.Uint64())
	}
	return &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("integer %s out of range", i)}
}

// bigIntEncoder is implemented by encoders which hold integers of any size.
type bigIntEncoder interface {
	encodeBigInt(*big.Int) error
}

// encodeValue replays the tree of v into enc.
func encodeValue(enc Encoder, v ir.Value) error {
	switch v.Type {
	case ir.NilType:
		return enc.EncodeNil()
	case ir.BoolType:
		return enc.EncodeBool(v.Bool)
	case ir.IntType:
		i, _ := v.AsBigInt()
		w := &walker{enc: enc}
		return w.encodeBigInt(i, "")
	case ir.FloatType:
		return enc.EncodeFloat(v.Float)
	case ir.StringType:
		return enc.EncodeString(v.Str)
	case ir.ArrayType:
		if err := enc.BeginSeq(len(v.Array)); err != nil {
			return err
		}
		for _, e := range v.Array {
			if err := enc.BeginElem(); err != nil {
				return err
			}
			if err := encodeValue(enc, e); err != nil {
				return err
			}
			if err := enc.EndElem(); err != nil {
				return err
			}
		}
		return enc.EndSeq()
	case ir.MapType:
		keys := v.Keys()
		if err := enc.BeginMap(len(keys)); err != nil {
			return err
		}
		for _, k := range keys {
			if err := enc.BeginEntry(k); err != nil {
				return err
			}
			if err := encodeValue(enc, v.Map[k]); err != nil {
				return err
			}
			if err := enc.EndEntry(); err != nil {
				return err
			}
		}
		return enc.EndMap()
	}
	return &MarshalError{Message: fmt.Sprintf("unknown value type %d", v.Type)}
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}
