package ir

import "fmt"

// Type identifies the kind of a Value.
type Type int

const (
	NilType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	ArrayType
	MapType
)

var typeNames = [...]string{
	NilType:    "Nil",
	BoolType:   "Boolean",
	IntType:    "Integer",
	FloatType:  "Float",
	StringType: "String",
	ArrayType:  "Array",
	MapType:    "Map",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i, n := range typeNames {
		if n == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// Types returns every Type in declaration order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

func (t Type) IsLeaf() bool {
	return t != ArrayType && t != MapType
}
