package gomap

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// Decoder reads one node of a Value tree. Child decoders for elements and
// entries are handed out by SeqAccess, MapAccess and EnumAccess, each
// knowing its path from the root for error reporting.
type Decoder struct {
	v   ir.Value
	at  path.Path
	cfg *decodeConfig
}

// Unmarshaler is implemented by types which decode themselves.
type Unmarshaler interface {
	UnmarshalVT(*Decoder) error
}

// Enum is implemented by Go types standing for enumerations whose variants
// are named. Such types usually implement Marshaler and Unmarshaler too,
// calling Encoder.EncodeUnitVariant or Encoder.BeginVariant and
// Decoder.DecodeEnumOf.
type Enum interface {
	EnumName() string
	Variants() []string
}

// Visitor receives the node of a Decoder according to its type.
type Visitor interface {
	VisitNil() error
	VisitBool(bool) error
	VisitInt(int64) error
	VisitFloat(float64) error
	VisitString(string) error
	VisitSeq(*SeqAccess) error
	VisitMap(*MapAccess) error
}

func NewDecoder(v ir.Value, opts ...DecodeOption) *Decoder {
	return &Decoder{v: v, at: path.Path{}, cfg: newDecodeConfig(opts)}
}

func (d *Decoder) child(v ir.Value, n path.Node) *Decoder {
	return &Decoder{v: v, at: d.at.Append(n), cfg: d.cfg}
}

// Value returns the node being decoded.
func (d *Decoder) Value() ir.Value { return d.v }

// Path returns the path of the node from the root of the decoded tree.
func (d *Decoder) Path() path.Path { return d.at }

// errorf returns an *UnmarshalError located at d.
func (d *Decoder) errorf(format string, args ...any) error {
	return &UnmarshalError{FieldPath: d.at.String(), Message: fmt.Sprintf(format, args...)}
}

// locate adds d's path to coercion errors.
func (d *Decoder) locate(err error) error {
	switch e := err.(type) {
	case *ir.TypeError:
		if e.Path == nil {
			e.Path = d.at
		}
	case *ir.RangeError:
		if e.Path == nil {
			e.Path = d.at
		}
	}
	return err
}

// DecodeAny calls the method of vis matching the type of the node. An
// Integer which does not fit in an int64 is a *ir.RangeError.
func (d *Decoder) DecodeAny(vis Visitor) error {
	if debug.Decode() {
		debug.Log("decode any", "path", d.at.String(), "value", ir.Describe(d.v))
	}
	switch d.v.Type {
	case ir.NilType:
		return vis.VisitNil()
	case ir.BoolType:
		return vis.VisitBool(d.v.Bool)
	case ir.IntType:
		i, err := d.v.AsInt(64)
		if err != nil {
			return d.locate(err)
		}
		return vis.VisitInt(i)
	case ir.FloatType:
		return vis.VisitFloat(d.v.Float)
	case ir.StringType:
		return vis.VisitString(d.v.Str)
	case ir.ArrayType:
		return vis.VisitSeq(d.seq())
	case ir.MapType:
		return vis.VisitMap(d.mapAccess())
	}
	return d.errorf("unknown value type %d", d.v.Type)
}

func (d *Decoder) DecodeBool() (bool, error) {
	b, err := d.v.AsBool()
	return b, d.locate(err)
}

// DecodeInt decodes a signed integer of the given bit size.
func (d *Decoder) DecodeInt(bits int) (int64, error) {
	i, err := d.v.AsInt(bits)
	return i, d.locate(err)
}

// DecodeUint decodes an unsigned integer of the given bit size.
func (d *Decoder) DecodeUint(bits int) (uint64, error) {
	u, err := d.v.AsUint(bits)
	return u, d.locate(err)
}

func (d *Decoder) DecodeBigInt() (*big.Int, error) {
	i, err := d.v.AsBigInt()
	return i, d.locate(err)
}

func (d *Decoder) DecodeFloat(bits int) (float64, error) {
	f, err := d.v.AsFloat(bits)
	return f, d.locate(err)
}

func (d *Decoder) DecodeString() (string, error) {
	s, err := d.v.AsString()
	return s, d.locate(err)
}

// DecodeOption reports whether the node is present, that is not Nil.
func (d *Decoder) DecodeOption() (*Decoder, bool) {
	if d.v.IsNil() {
		return nil, false
	}
	return d, true
}

// DecodeSeq returns an accessor for the elements of an Array.
func (d *Decoder) DecodeSeq() (*SeqAccess, error) {
	if d.v.Type != ir.ArrayType {
		_, err := d.v.AsArray()
		return nil, d.locate(err)
	}
	return d.seq(), nil
}

// DecodeMap returns an accessor for the entries of a Map.
func (d *Decoder) DecodeMap() (*MapAccess, error) {
	if d.v.Type != ir.MapType {
		_, err := d.v.AsMap()
		return nil, d.locate(err)
	}
	return d.mapAccess(), nil
}

// DecodeEnum decodes a variant of the enum name whose variants are listed.
//
// Two forms are accepted: a String naming a variant without payload, and a
// Map with exactly one key naming the variant and holding its payload. Any
// other shape, or a name not in variants, is an *UnmarshalError.
func (d *Decoder) DecodeEnum(name string, variants []string) (*EnumAccess, error) {
	var (
		variant string
		payload *Decoder
	)
	switch d.v.Type {
	case ir.StringType:
		variant = d.v.Str
	case ir.MapType:
		if len(d.v.Map) != 1 {
			return nil, d.errorf("enum %s: expected a map with a single key, found %d keys", name, len(d.v.Map))
		}
		for k, v := range d.v.Map {
			variant = k
			payload = d.child(v, path.Ident(k))
		}
	default:
		return nil, d.errorf("enum %s: expected a string or a map, found %s", name, ir.Describe(d.v))
	}
	if !slices.Contains(variants, variant) {
		return nil, d.errorf("enum %s has no such variant %q", name, variant)
	}
	return &EnumAccess{variant: variant, payload: payload, at: d}, nil
}

// DecodeEnumOf is DecodeEnum for the enum e describes.
func (d *Decoder) DecodeEnumOf(e Enum) (*EnumAccess, error) {
	return d.DecodeEnum(e.EnumName(), e.Variants())
}

// Decode decodes the node into the value target points to. See FromValue.
func (d *Decoder) Decode(target any) error {
	return decodeInto(d, target)
}

func (d *Decoder) seq() *SeqAccess {
	return &SeqAccess{d: d}
}

func (d *Decoder) mapAccess() *MapAccess {
	return &MapAccess{d: d, keys: d.v.Keys()}
}

// SeqAccess streams the elements of an Array.
type SeqAccess struct {
	d *Decoder
	i int
}

// Len returns the number of elements not yet consumed.
func (s *SeqAccess) Len() int { return len(s.d.v.Array) - s.i }

// Next returns a decoder for the next element, or false when there are no
// more.
func (s *SeqAccess) Next() (*Decoder, bool) {
	if s.i >= len(s.d.v.Array) {
		return nil, false
	}
	res := s.d.child(s.d.v.Array[s.i], path.Index(s.i))
	s.i++
	return res, true
}

// MapAccess streams the entries of a Map in sorted key order.
type MapAccess struct {
	d    *Decoder
	keys []string
	i    int
}

// Len returns the number of entries not yet consumed.
func (m *MapAccess) Len() int { return len(m.keys) - m.i }

// Next returns the next key and a decoder for its value, or false when
// there are no more.
func (m *MapAccess) Next() (string, *Decoder, bool) {
	if m.i >= len(m.keys) {
		return "", nil, false
	}
	k := m.keys[m.i]
	m.i++
	return k, m.d.child(m.d.v.Map[k], path.Ident(k)), true
}

// EnumAccess is a decoded enum variant.
type EnumAccess struct {
	variant string
	payload *Decoder
	at      *Decoder
}

func (e *EnumAccess) Variant() string { return e.variant }

// IsUnit reports whether the variant was given in string form, without a
// payload.
func (e *EnumAccess) IsUnit() bool { return e.payload == nil }

// Payload returns a decoder for the payload of the variant. For a unit
// variant it decodes Nil.
func (e *EnumAccess) Payload() *Decoder {
	if e.payload == nil {
		return e.at.child(ir.Nil(), path.Ident(e.variant))
	}
	return e.payload
}
