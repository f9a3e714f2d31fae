package ir

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
)

// FromAny converts the generic Go forms produced by format decoders into a
// Value: nil, bool, the integer and float kinds, string, json.Number,
// *big.Int, []any, map[string]any and map[any]any with scalar keys. Other
// slices and string-keyed maps are converted element by element.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return v.Clone(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case int:
		return FromInt(v), nil
	case int64:
		return FromInt(v), nil
	case uint64:
		return FromUint(v), nil
	case float64:
		return FromFloat(v), nil
	case *big.Int:
		return FromBigInt(v), nil
	case big.Int:
		return FromBigInt(&v), nil
	case json.Number:
		return fromNumber(string(v))
	case []any:
		res := make([]Value, len(v))
		for i, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			res[i] = ev
		}
		return Value{Type: ArrayType, Array: res}, nil
	case map[string]any:
		res := make(map[string]Value, len(v))
		for k, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			res[k] = ev
		}
		return Value{Type: MapType, Map: res}, nil
	case map[any]any:
		res := make(map[string]Value, len(v))
		for k, e := range v {
			kv, err := FromAny(k)
			if err != nil {
				return Value{}, err
			}
			ks, err := kv.AsString()
			if err != nil {
				return Value{}, fmt.Errorf("map key: %w", err)
			}
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			res[ks] = ev
		}
		return Value{Type: MapType, Map: res}, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}, nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}, nil
		}
		res := make([]Value, rv.Len())
		for i := range rv.Len() {
			ev, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			res[i] = ev
		}
		return Value{Type: ArrayType, Array: res}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Value{}, nil
		}
		res := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ev, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			res[iter.Key().String()] = ev
		}
		return Value{Type: MapType, Map: res}, nil
	}
	if !rv.IsValid() {
		return Value{}, nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

// fromNumber parses a JSON number, keeping integers exact.
func fromNumber(s string) (Value, error) {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return Value{Type: IntType, Int: i}, nil
	}
	f, _, err := big.ParseFloat(s, 10, 64, big.ToNearestEven)
	if err != nil {
		return Value{}, fmt.Errorf("%w: bad number %q", ErrType, s)
	}
	f64, _ := f.Float64()
	return FromFloat(f64), nil
}

// ParseNumber parses the text of a number literal into an Integer when it
// is integral and a Float otherwise.
func ParseNumber(s string) (Value, error) {
	return fromNumber(s)
}

// ToAny converts v to generic Go values: nil, bool, int64 (or *big.Int when
// the integer does not fit), float64, string, []any and map[string]any.
func (v Value) ToAny() any {
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		i := v.bigInt()
		if i.IsInt64() {
			return i.Int64()
		}
		return new(big.Int).Set(i)
	case FloatType:
		return v.Float
	case StringType:
		return v.Str
	case ArrayType:
		res := make([]any, len(v.Array))
		for i := range v.Array {
			res[i] = v.Array[i].ToAny()
		}
		return res
	case MapType:
		res := make(map[string]any, len(v.Map))
		for k, c := range v.Map {
			res[k] = c.ToAny()
		}
		return res
	}
	return nil
}
