package ir

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

const (
	expectBool   = "a boolean"
	expectInt    = "an integer"
	expectFloat  = "a floating point"
	expectString = "a string"
	expectArray  = "an array"
	expectMap    = "a map"
)

// AsBool coerces v to a boolean. Numbers are true when non-zero; strings
// match "1", "true", "on", "yes" and "0", "false", "off", "no" without
// regard to case.
func (v Value) AsBool() (bool, error) {
	switch v.Type {
	case BoolType:
		return v.Bool, nil
	case IntType:
		return v.bigInt().Sign() != 0, nil
	case FloatType:
		return v.Float != 0, nil
	case StringType:
		switch strings.ToLower(v.Str) {
		case "1", "true", "on", "yes":
			return true, nil
		case "0", "false", "off", "no":
			return false, nil
		}
		return false, typeErr(FromString(strings.ToLower(v.Str)), expectBool)
	}
	return false, typeErr(v, expectBool)
}

// boolWord recognizes the words integer and float coercion accept.
func boolWord(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "true", "on", "yes":
		return 1, true
	case "false", "off", "no":
		return 0, true
	}
	return 0, false
}

// AsInt coerces v to a signed integer of the given bit size (8, 16, 32 or
// 64). An Integer which does not fit is a *RangeError.
func (v Value) AsInt(bits int) (int64, error) {
	switch v.Type {
	case IntType:
		i := v.bigInt()
		if !fitsSigned(i, bits) {
			return 0, rangeErr(i)
		}
		return i.Int64(), nil
	case StringType:
		if b, ok := boolWord(v.Str); ok {
			return int64(b), nil
		}
		n, err := strconv.ParseInt(v.Str, 10, bits)
		if err != nil {
			return 0, typeErr(v, expectInt)
		}
		return n, nil
	case BoolType:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case FloatType:
		i, err := roundFloat(v)
		if err != nil {
			return 0, err
		}
		if !fitsSigned(i, bits) {
			return 0, rangeErr(i)
		}
		return i.Int64(), nil
	}
	return 0, typeErr(v, expectInt)
}

// AsUint is like AsInt for unsigned integers.
func (v Value) AsUint(bits int) (uint64, error) {
	switch v.Type {
	case IntType:
		i := v.bigInt()
		if !fitsUnsigned(i, bits) {
			return 0, rangeErr(i)
		}
		return i.Uint64(), nil
	case StringType:
		if b, ok := boolWord(v.Str); ok {
			return uint64(b), nil
		}
		n, err := strconv.ParseUint(v.Str, 10, bits)
		if err != nil {
			return 0, typeErr(v, expectInt)
		}
		return n, nil
	case BoolType:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case FloatType:
		i, err := roundFloat(v)
		if err != nil {
			return 0, err
		}
		if !fitsUnsigned(i, bits) {
			return 0, rangeErr(i)
		}
		return i.Uint64(), nil
	}
	return 0, typeErr(v, expectInt)
}

// AsBigInt coerces v to an arbitrary precision integer.
func (v Value) AsBigInt() (*big.Int, error) {
	switch v.Type {
	case IntType:
		return new(big.Int).Set(v.bigInt()), nil
	case StringType:
		if b, ok := boolWord(v.Str); ok {
			return big.NewInt(int64(b)), nil
		}
		i, ok := new(big.Int).SetString(v.Str, 10)
		if !ok {
			return nil, typeErr(v, expectInt)
		}
		return i, nil
	case BoolType:
		if v.Bool {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case FloatType:
		return roundFloat(v)
	}
	return nil, typeErr(v, expectInt)
}

// AsFloat coerces v to a float of the given bit size (32 or 64). An Integer
// beyond the float range is a *RangeError.
func (v Value) AsFloat(bits int) (float64, error) {
	switch v.Type {
	case FloatType:
		if bits == 32 {
			return float64(float32(v.Float)), nil
		}
		return v.Float, nil
	case StringType:
		if b, ok := boolWord(v.Str); ok {
			return float64(b), nil
		}
		f, err := strconv.ParseFloat(v.Str, bits)
		if err != nil {
			return 0, typeErr(v, expectFloat)
		}
		return f, nil
	case IntType:
		bf := new(big.Float).SetInt(v.bigInt())
		var f float64
		if bits == 32 {
			f32, _ := bf.Float32()
			f = float64(f32)
		} else {
			f, _ = bf.Float64()
		}
		if math.IsInf(f, 0) {
			return 0, rangeErr(v.bigInt())
		}
		return f, nil
	case BoolType:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	}
	return 0, typeErr(v, expectFloat)
}

// AsString coerces scalars to their canonical text form.
func (v Value) AsString() (string, error) {
	switch v.Type {
	case StringType, BoolType, IntType, FloatType:
		return v.String(), nil
	}
	return "", typeErr(v, expectString)
}

// AsArray returns the elements of an Array.
func (v Value) AsArray() ([]Value, error) {
	if v.Type != ArrayType {
		return nil, typeErr(v, expectArray)
	}
	return v.Array, nil
}

// AsMap returns the entries of a Map.
func (v Value) AsMap() (map[string]Value, error) {
	if v.Type != MapType {
		return nil, typeErr(v, expectMap)
	}
	return v.Map, nil
}

// As coerces v to T. Supported targets are bool, the Go integer and float
// kinds, string, *big.Int, []Value, map[string]Value, Value and struct{},
// including named types whose underlying kind is one of these scalars.
// Containers returned by As are deep copies.
func As[T any](v Value) (T, error) {
	var zero T
	var res any
	var err error
	switch any(zero).(type) {
	case struct{}:
		return zero, nil
	case Value:
		res = v.Clone()
	case []Value:
		if _, err = v.AsArray(); err == nil {
			res = v.Clone().Array
		}
	case map[string]Value:
		if _, err = v.AsMap(); err == nil {
			res = v.Clone().Map
		}
	case *big.Int:
		res, err = v.AsBigInt()
	case bool:
		res, err = v.AsBool()
	case string:
		res, err = v.AsString()
	case float64:
		res, err = v.AsFloat(64)
	case int64:
		res, err = v.AsInt(64)
	case uint64:
		res, err = v.AsUint(64)
	default:
		rv := reflect.ValueOf(&zero).Elem()
		if err := Coerce(v, rv); err != nil {
			return zero, err
		}
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

// Coerce stores v into dst, which must be settable and of a scalar kind.
func Coerce(v Value, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Bool:
		b, err := v.AsBool()
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := v.AsInt(dst.Type().Bits())
		if err != nil {
			return err
		}
		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := v.AsUint(dst.Type().Bits())
		if err != nil {
			return err
		}
		dst.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := v.AsFloat(dst.Type().Bits())
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	case reflect.String:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		dst.SetString(s)
	default:
		return fmt.Errorf("%w: cannot coerce to %s", ErrUnsupported, dst.Type())
	}
	return nil
}

func fitsSigned(i *big.Int, bits int) bool {
	if bits >= 64 {
		return i.IsInt64()
	}
	if !i.IsInt64() {
		return false
	}
	n := i.Int64()
	lim := int64(1) << (bits - 1)
	return n >= -lim && n < lim
}

func fitsUnsigned(i *big.Int, bits int) bool {
	if !i.IsUint64() {
		return false
	}
	if bits >= 64 {
		return true
	}
	return i.Uint64() < uint64(1)<<bits
}

// roundFloat rounds half away from zero.
func roundFloat(v Value) (*big.Int, error) {
	if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
		return nil, typeErr(v, expectInt)
	}
	i, _ := new(big.Float).SetFloat64(math.Round(v.Float)).Int(nil)
	return i, nil
}
