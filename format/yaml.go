package format

import (
	"math/big"

	"github.com/goccy/go-yaml"
	"github.com/signadot/vtree/ir"
)

// ReadYAML parses a YAML document.
func ReadYAML(d []byte, opts ...Option) (ir.Value, error) {
	o := newOptions(opts)
	var x any
	if err := yaml.Unmarshal(d, &x); err != nil {
		return ir.Value{}, &ParseError{Origin: o.origin, Err: err}
	}
	v, err := ir.FromAny(x)
	if err != nil {
		return ir.Value{}, &ParseError{Origin: o.origin, Err: err}
	}
	return v, nil
}

// WriteYAML renders v as YAML. Integers which do not fit in 64 bits are
// written as strings.
func WriteYAML(v ir.Value, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	indent := o.indent
	if indent == 0 {
		indent = 2
	}
	return yaml.MarshalWithOptions(toYAML(v), yaml.Indent(indent), yaml.IndentSequence(true))
}

func toYAML(v ir.Value) any {
	switch v.Type {
	case ir.ArrayType:
		res := make([]any, len(v.Array))
		for i, e := range v.Array {
			res[i] = toYAML(e)
		}
		return res
	case ir.MapType:
		res := make(map[string]any, len(v.Map))
		for k, e := range v.Map {
			res[k] = toYAML(e)
		}
		return res
	}
	x := v.ToAny()
	if bi, ok := x.(*big.Int); ok {
		if bi.IsUint64() {
			return bi.Uint64()
		}
		return bi.String()
	}
	return x
}
