package gomap

import (
	"errors"
	"strconv"

	"github.com/signadot/vtree/ir"
)

// ErrMapKey is wrapped by errors for map keys which are not primitives.
var ErrMapKey = errors.New("map key must reduce to a string")

// mapKey renders a map key as a string. Strings, booleans, numbers, unit
// variants and encoding.TextMarshaler implementations are accepted.
func mapKey(k any) (string, error) {
	if s, ok := k.(string); ok {
		return s, nil
	}
	ke := &keyEncoder{}
	if err := Walk(k, ke); err != nil {
		return "", err
	}
	return ke.key, nil
}

// keyEncoder is an Encoder accepting a single primitive.
type keyEncoder struct {
	key string
}

func keyErr(what string) error {
	return &MarshalError{Message: what + " as map key", Err: ErrMapKey}
}

func (k *keyEncoder) EncodeNil() error { return keyErr("nil") }
func (k *keyEncoder) EncodeBool(b bool) error {
	k.key = strconv.FormatBool(b)
	return nil
}

func (k *keyEncoder) EncodeInt(i int64) error {
	k.key = strconv.FormatInt(i, 10)
	return nil
}

func (k *keyEncoder) EncodeUint(u uint64) error {
	k.key = strconv.FormatUint(u, 10)
	return nil
}

func (k *keyEncoder) EncodeFloat(f float64) error {
	k.key = ir.FromFloat(f).String()
	return nil
}

func (k *keyEncoder) EncodeString(s string) error {
	k.key = s
	return nil
}

func (k *keyEncoder) EncodeUnitVariant(_, variant string) error {
	k.key = variant
	return nil
}

func (k *keyEncoder) BeginVariant(_, variant string) error { return keyErr("variant " + variant) }
func (k *keyEncoder) EndVariant() error { return keyErr("variant") }
func (k *keyEncoder) BeginStruct(string, int) error { return keyErr("struct") }
func (k *keyEncoder) BeginField(string) error { return keyErr("struct") }
func (k *keyEncoder) EndField() error { return keyErr("struct") }
func (k *keyEncoder) EndStruct() error { return keyErr("struct") }
func (k *keyEncoder) BeginSeq(int) error { return keyErr("sequence") }
func (k *keyEncoder) BeginElem() error { return keyErr("sequence") }
func (k *keyEncoder) EndElem() error { return keyErr("sequence") }
func (k *keyEncoder) EndSeq() error { return keyErr("sequence") }
func (k *keyEncoder) BeginMap(int) error { return keyErr("map") }
func (k *keyEncoder) BeginEntry(any) error { return keyErr("map") }
func (k *keyEncoder) EndEntry() error { return keyErr("map") }
func (k *keyEncoder) EndMap() error { return keyErr("map") }
