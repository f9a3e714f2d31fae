package ir

// Truth reports whether v is a non-empty container, a non-empty string, a
// non-zero number or true.
func Truth(v Value) bool {
	switch v.Type {
	case MapType:
		return len(v.Map) != 0
	case ArrayType:
		return len(v.Array) != 0
	case StringType:
		return v.Str != ""
	case IntType:
		return v.bigInt().Sign() != 0
	case FloatType:
		return v.Float != 0.0
	case BoolType:
		return v.Bool
	default:
		return false
	}
}
