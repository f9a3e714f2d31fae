package ir

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/signadot/vtree/path"
)

var (
	ErrType        = errors.New("invalid type")
	ErrRange       = errors.New("invalid range")
	ErrUnsupported = errors.New("unsupported go type")
)

// TypeError reports a value which could not be coerced or merged into the
// expected kind.
type TypeError struct {
	// Type is the type of the offending value.
	Type Type
	// Found describes the offending value, e.g. "boolean `true`".
	Found string
	// Expected names the kind that was wanted, e.g. "a boolean".
	Expected string
	// Path locates the offending value, if known.
	Path path.Path
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("%s: %s, expected %s", ErrType, e.Found, e.Expected)
	if e.Path != nil {
		msg += " at " + e.Path.String()
	}
	return msg
}

func (e *TypeError) Unwrap() error {
	return ErrType
}

// RangeError reports an integer which does not fit the requested width, or
// an index which does not resolve.
type RangeError struct {
	Value *big.Int
	Path  path.Path
}

func (e *RangeError) Error() string {
	msg := fmt.Sprintf("%s %s", ErrRange, e.Value)
	if e.Path != nil {
		msg += " at " + e.Path.String()
	}
	return msg
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

func typeErr(v Value, expected string) *TypeError {
	return &TypeError{Type: v.Type, Found: Describe(v), Expected: expected}
}

func rangeErr(i *big.Int) *RangeError {
	return &RangeError{Value: new(big.Int).Set(i)}
}

// Describe renders v the way errors report an unexpected value: scalars
// with their content, containers by kind only.
func Describe(v Value) string {
	switch v.Type {
	case BoolType:
		return fmt.Sprintf("boolean `%t`", v.Bool)
	case IntType:
		return fmt.Sprintf("integer `%s`", v.bigInt())
	case FloatType:
		return fmt.Sprintf("floating point `%s`", formatFloat(v.Float))
	case StringType:
		return "string " + strconv.Quote(v.Str)
	case ArrayType:
		return "array"
	case MapType:
		return "map"
	default:
		return "unit value"
	}
}
