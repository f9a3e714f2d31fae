package ir

import (
	"maps"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Value is a node of the value tree. The zero Value is Nil.
//
// Array and Map share their backing storage when a Value is copied; use
// Clone for an independent tree.
type Value struct {
	Type Type

	Bool  bool
	Int   *big.Int
	Float float64
	Str   string
	Array []Value
	Map   map[string]Value
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// Scalar is the set of Go types with a total conversion into a Value.
type Scalar interface {
	~bool | Signed | Unsigned | Float | ~string
}

func Nil() Value {
	return Value{}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func FromInt[T Signed](v T) Value {
	return Value{Type: IntType, Int: big.NewInt(int64(v))}
}

func FromUint[T Unsigned](v T) Value {
	return Value{Type: IntType, Int: new(big.Int).SetUint64(uint64(v))}
}

// FromBigInt returns an Integer holding a copy of i, or Nil if i is nil.
func FromBigInt(i *big.Int) Value {
	if i == nil {
		return Value{}
	}
	return Value{Type: IntType, Int: new(big.Int).Set(i)}
}

func FromFloat[T Float](v T) Value {
	return Value{Type: FloatType, Float: float64(v)}
}

func FromString(v string) Value {
	return Value{Type: StringType, Str: v}
}

// From converts any scalar, including named scalar types.
func From[T Scalar](v T) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float())
	default:
		return FromString(rv.String())
	}
}

// FromOption returns Nil for a nil pointer and the pointee otherwise.
func FromOption[T Scalar](p *T) Value {
	if p == nil {
		return Value{}
	}
	return From(*p)
}

func FromSlice[T Scalar](vs []T) Value {
	res := make([]Value, len(vs))
	for i, v := range vs {
		res[i] = From(v)
	}
	return Value{Type: ArrayType, Array: res}
}

func FromMap[T Scalar](m map[string]T) Value {
	res := make(map[string]Value, len(m))
	for k, v := range m {
		res[k] = From(v)
	}
	return Value{Type: MapType, Map: res}
}

// FromValues returns an Array of vs. The values are not copied.
func FromValues(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{Type: ArrayType, Array: vs}
}

// FromEntries returns a Map of m. The map is not copied.
func FromEntries(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{Type: MapType, Map: m}
}

func EmptyMap() Value {
	return Value{Type: MapType, Map: map[string]Value{}}
}

func EmptyArray() Value {
	return Value{Type: ArrayType, Array: []Value{}}
}

func (v Value) IsNil() bool {
	return v.Type == NilType
}

// Len returns the number of children of a container, and 0 otherwise.
func (v Value) Len() int {
	switch v.Type {
	case ArrayType:
		return len(v.Array)
	case MapType:
		return len(v.Map)
	}
	return 0
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.Type {
	case IntType:
		return FromBigInt(v.bigInt())
	case ArrayType:
		res := make([]Value, len(v.Array))
		for i := range v.Array {
			res[i] = v.Array[i].Clone()
		}
		return Value{Type: ArrayType, Array: res}
	case MapType:
		res := make(map[string]Value, len(v.Map))
		for k, c := range v.Map {
			res[k] = c.Clone()
		}
		return Value{Type: MapType, Map: res}
	}
	return v
}

// Keys returns the keys of a Map in sorted order.
func (v Value) Keys() []string {
	if v.Type != MapType {
		return nil
	}
	return slices.Sorted(maps.Keys(v.Map))
}

func (v Value) bigInt() *big.Int {
	if v.Int == nil {
		return new(big.Int)
	}
	return v.Int
}

var dumpCfg = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// String renders scalars in their natural text form and Nil as "nil".
// Containers render as a structural dump whose exact format is not stable.
func (v Value) String() string {
	switch v.Type {
	case StringType:
		return v.Str
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case IntType:
		return v.bigInt().String()
	case FloatType:
		return formatFloat(v.Float)
	case ArrayType, MapType:
		return dumpCfg.Sprintf("%v", v.ToAny())
	default:
		return "nil"
	}
}

// Dump returns a verbose multi-line rendering of v for debugging.
func (v Value) Dump() string {
	return dumpCfg.Sdump(v.ToAny())
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
