package gomap

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"

	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

var (
	unmarshalerType     = reflect.TypeFor[Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// FromValue decodes v into the value target points to.
//
// Scalars follow the coercion rules of the ir package. Nil decodes to the
// zero value of pointers, slices, maps and interfaces; for any other target
// it is an *ir.TypeError located at the Nil node. Arrays decode into slices
// and Go arrays, Maps into maps and structs, using the same struct tags as
// ToValue. Unmarshaler and
// encoding.TextUnmarshaler implementations take precedence; an empty
// interface receives the generic form of ir.Value.ToAny.
func FromValue(v ir.Value, target any, opts ...DecodeOption) error {
	return decodeInto(NewDecoder(v, opts...), target)
}

func decodeInto(d *Decoder, target any) error {
	if u, ok := target.(Unmarshaler); ok {
		return u.UnmarshalVT(d)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{
			FieldPath: d.at.String(),
			Message:   fmt.Sprintf("target must be a non-nil pointer, got %T", target),
		}
	}
	return fromValueReflect(d, rv.Elem())
}

func fromValueReflect(d *Decoder, val reflect.Value) error {
	typ := val.Type()
	if val.CanAddr() {
		addr := val.Addr()
		if addr.Type().Implements(unmarshalerType) {
			return addr.Interface().(Unmarshaler).UnmarshalVT(d)
		}
		if typ != reflect.TypeFor[big.Int]() && addr.Type().Implements(textUnmarshalerType) {
			s, err := d.DecodeString()
			if err != nil {
				return err
			}
			if err := addr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return &UnmarshalError{FieldPath: d.at.String(), Message: "UnmarshalText", Err: err}
			}
			return nil
		}
	}

	switch typ {
	case valueType:
		val.Set(reflect.ValueOf(d.v.Clone()))
		return nil
	case bigIntType:
		i, err := d.DecodeBigInt()
		if err != nil {
			return err
		}
		val.Set(reflect.ValueOf(*i))
		return nil
	}

	switch typ.Kind() {
	case reflect.Pointer:
		if d.v.IsNil() {
			val.SetZero()
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromValueReflect(d, val.Elem())
	case reflect.Interface:
		if d.v.IsNil() {
			val.SetZero()
			return nil
		}
		if typ.NumMethod() != 0 {
			return d.errorf("cannot decode into non-empty interface %s", typ)
		}
		val.Set(reflect.ValueOf(d.v.ToAny()))
		return nil
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		return d.locate(ir.Coerce(d.v, val))
	case reflect.Slice:
		return fromValueToSlice(d, val)
	case reflect.Array:
		return fromValueToArray(d, val)
	case reflect.Map:
		return fromValueToMap(d, val)
	case reflect.Struct:
		return fromValueToStruct(d, val)
	}
	return d.errorf("unsupported type: %s", typ)
}

func fromValueToSlice(d *Decoder, val reflect.Value) error {
	if d.v.IsNil() {
		val.SetZero()
		return nil
	}
	seq, err := d.DecodeSeq()
	if err != nil {
		return err
	}
	res := reflect.MakeSlice(val.Type(), seq.Len(), seq.Len())
	for i := 0; ; i++ {
		ed, ok := seq.Next()
		if !ok {
			break
		}
		if err := fromValueReflect(ed, res.Index(i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func fromValueToArray(d *Decoder, val reflect.Value) error {
	seq, err := d.DecodeSeq()
	if err != nil {
		return err
	}
	if seq.Len() > val.Len() {
		return d.errorf("%d elements do not fit in %s", seq.Len(), val.Type())
	}
	val.SetZero()
	for i := 0; ; i++ {
		ed, ok := seq.Next()
		if !ok {
			return nil
		}
		if err := fromValueReflect(ed, val.Index(i)); err != nil {
			return err
		}
	}
}

func fromValueToMap(d *Decoder, val reflect.Value) error {
	if d.v.IsNil() {
		val.SetZero()
		return nil
	}
	ma, err := d.DecodeMap()
	if err != nil {
		return err
	}
	typ := val.Type()
	if val.IsNil() {
		val.Set(reflect.MakeMapWithSize(typ, ma.Len()))
	}
	for {
		k, ed, ok := ma.Next()
		if !ok {
			return nil
		}
		kv := reflect.New(typ.Key()).Elem()
		kd := &Decoder{v: ir.FromString(k), at: ed.at, cfg: d.cfg}
		if err := fromValueReflect(kd, kv); err != nil {
			return &UnmarshalError{FieldPath: ed.at.String(), Message: fmt.Sprintf("map key %q", k), Err: err}
		}
		ev := reflect.New(typ.Elem()).Elem()
		if cur := val.MapIndex(kv); cur.IsValid() {
			ev.Set(cur)
		}
		if err := fromValueReflect(ed, ev); err != nil {
			return err
		}
		val.SetMapIndex(kv, ev)
	}
}

func fromValueToStruct(d *Decoder, val reflect.Value) error {
	if d.v.Type != ir.MapType {
		_, err := d.v.AsMap()
		return d.locate(err)
	}
	fields := structFields(val.Type(), d.cfg.tag)
	byName := make(map[string]fieldInfo, len(fields))
	for _, f := range fields {
		byName[f.name] = f
	}
	ma := d.mapAccess()
	for {
		k, fd, ok := ma.Next()
		if !ok {
			return nil
		}
		f, ok := byName[k]
		if !ok {
			if d.cfg.disallowUnknown {
				return d.child(ir.Nil(), path.Ident(k)).errorf("unknown field %q in %s", k, val.Type())
			}
			continue
		}
		if err := fromValueReflect(fd, val.FieldByIndex(f.index)); err != nil {
			return err
		}
	}
}
