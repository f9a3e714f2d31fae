// Package gomap converts between Go values and ir.Value trees.
//
// # Usage
//
//	type Service struct {
//	    Name  string `vt:"name"`
//	    Ports []int  `vt:"ports,omitempty"`
//	}
//
//	// Encode a Go value
//	v, err := gomap.ToValue(Service{Name: "web"})
//
//	// Decode a Value
//	var svc Service
//	err = gomap.FromValue(v, &svc)
//
// # Encoding
//
// Walk describes any Go value to an Encoder as a sequence of calls, and
// ValueEncoder is the Encoder which builds a Value from them, storing every
// primitive with ir.Value.SetPath at the path of its enclosing fields, map
// entries and sequence elements. Map keys must reduce to a single string.
//
// # Decoding
//
// A Decoder reads one node of a Value. DecodeAny dispatches on the type of
// the node to a Visitor; the typed Decode methods apply the coercion rules
// of package ir. FromValue decodes into any Go value by reflection.
//
// # Enums
//
// Go types standing for enumerations implement Enum together with
// Marshaler and Unmarshaler. A variant without payload is encoded as its
// name, and a variant with payload as a map whose single key is the name.
//
// # Struct Tags
//
// Fields are named by the "vt" tag (see TagName): `vt:"name,omitempty"`,
// `vt:"-"` to skip a field and `vt:",inline"` to flatten a struct field.
// Embedded structs are flattened by default. Only exported fields are
// used and field names are matched case-sensitively.
package gomap
