package ir

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected int
	}{
		// Nil < Bool < Integer < Float < String < Array < Map
		{"Nil < Bool", Nil(), FromBool(false), -1},
		{"Bool < Integer", FromBool(true), FromInt(0), -1},
		{"Integer < Float", FromInt(5), FromFloat(1.0), -1},
		{"Float < String", FromFloat(9.0), FromString(""), -1},
		{"String < Array", FromString("z"), EmptyArray(), -1},
		{"Array < Map", FromValues(FromInt(1)), EmptyMap(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"Int < Int", FromInt(-1), FromInt(2), -1},
		{"Int == Int", FromInt(2), FromInt(2), 0},
		{"Float < Float", FromFloat(1.5), FromFloat(2.5), -1},
		{"String < String", FromString("a"), FromString("b"), -1},

		{"Short Array < Long Array", FromValues(FromInt(1)), FromValues(FromInt(1), FromInt(2)), -1},
		{"Array Element Comparison", FromValues(FromInt(1)), FromValues(FromInt(2)), -1},
		{"Empty Map == Empty Map", EmptyMap(), EmptyMap(), 0},
		{"Map Key Comparison", obj("a", FromInt(1)), obj("b", FromInt(1)), -1},
		{"Map Value Comparison", obj("a", FromInt(1)), obj("a", FromInt(2)), -1},
		{"Short Map < Long Map", obj("a", FromInt(1)), obj("a", FromInt(1), "b", FromInt(2)), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if got := Equal(tt.a, tt.b); got != (tt.expected == 0) {
				t.Errorf("Equal() = %v", got)
			}
		})
	}
}

func TestEqualNaN(t *testing.T) {
	nan := FromFloat(math.NaN())
	if Equal(nan, nan) {
		t.Error("NaN equals itself")
	}
	if !Equal(Value{Type: IntType}, FromInt(0)) {
		t.Error("nil Int does not equal zero")
	}
}
