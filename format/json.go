package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/signadot/vtree/ir"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid json")

// ReadJSON parses a JSON document. Integers keep their exact value.
func ReadJSON(d []byte, opts ...Option) (ir.Value, error) {
	o := newOptions(opts)
	if !gjson.ValidBytes(d) {
		return ir.Value{}, &ParseError{Origin: o.origin, Err: errInvalidJSON}
	}
	v, err := fromGJSON(gjson.ParseBytes(d))
	if err != nil {
		return ir.Value{}, &ParseError{Origin: o.origin, Err: err}
	}
	return v, nil
}

func fromGJSON(r gjson.Result) (ir.Value, error) {
	switch r.Type {
	case gjson.Null:
		return ir.Nil(), nil
	case gjson.False:
		return ir.FromBool(false), nil
	case gjson.True:
		return ir.FromBool(true), nil
	case gjson.Number:
		return ir.ParseNumber(r.Raw)
	case gjson.String:
		return ir.FromString(r.Str), nil
	}
	var err error
	switch {
	case r.IsArray():
		arr := []ir.Value{}
		r.ForEach(func(_, e gjson.Result) bool {
			var ev ir.Value
			ev, err = fromGJSON(e)
			arr = append(arr, ev)
			return err == nil
		})
		return ir.FromValues(arr...), err
	case r.IsObject():
		m := map[string]ir.Value{}
		r.ForEach(func(k, e gjson.Result) bool {
			var ev ir.Value
			ev, err = fromGJSON(e)
			m[k.Str] = ev
			return err == nil
		})
		return ir.FromEntries(m), err
	}
	return ir.Value{}, fmt.Errorf("unexpected json %q", r.Raw)
}

// WriteJSON renders v as JSON, with map keys in sorted order. Infinite and
// NaN floats cannot be written.
func WriteJSON(v ir.Value, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	if err := checkJSONFloats(v); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if o.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", o.indent))
	}
	if err := enc.Encode(v.ToAny()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkJSONFloats(v ir.Value) error {
	switch v.Type {
	case ir.FloatType:
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return fmt.Errorf("%w: %s is not representable in json", ir.ErrUnsupported, v)
		}
	case ir.ArrayType:
		for _, e := range v.Array {
			if err := checkJSONFloats(e); err != nil {
				return err
			}
		}
	case ir.MapType:
		for _, e := range v.Map {
			if err := checkJSONFloats(e); err != nil {
				return err
			}
		}
	}
	return nil
}
