// Package ir provides the value tree used as the common intermediate
// representation for configuration-like data.
//
// # Overview
//
// A Value is a closed tagged union. The Type field says which payload field
// is meaningful:
//
//   - NilType: no payload
//   - BoolType: Bool
//   - IntType: Int, an arbitrary precision integer
//   - FloatType: Float
//   - StringType: Str
//   - ArrayType: Array, densely indexed from 0
//   - MapType: Map, unordered with unique string keys
//
// The zero Value is Nil. Containers may hold values of different types at
// different positions.
//
// # Creating Values
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	arr := ir.FromSlice([]int{1, 2, 3})
//	obj := ir.FromEntries(map[string]ir.Value{
//	    "key": ir.FromString("value"),
//	})
//
// Format libraries which decode into generic Go values can use FromAny, and
// ToAny goes the other way.
//
// # Coercion
//
// As converts a Value to a Go type following a loose coercion table:
// strings such as "yes" and "off" coerce to booleans and integers, numbers
// coerce to strings, booleans coerce to 0 and 1, and so on. Containers only
// coerce to their own type. Failures are reported as *TypeError, or as
// *RangeError when an integer does not fit the requested width.
//
// # Paths
//
// Values are addressed with paths from github.com/signadot/vtree/path:
//
//	var root ir.Value
//	old, err := root.Set("/server/ports[0]", ir.FromInt(8080))
//	port, ok, err := ir.Get[uint16](root, "/server/ports[0]")
//
// Set creates intermediate maps and arrays as needed, replacing any node of
// an incompatible type on the way. It checks the whole path before changing
// anything, so a failing Set leaves the tree untouched. Get reports a path
// which does not resolve with ok == false rather than an error.
//
// # Merging
//
// Merge folds a source tree into a target tree. Maps merge key by key,
// arrays index by index, scalars are overwritten only by scalars of the same
// type, and Nil never erases anything. A shape mismatch is a *TypeError.
//
// # Thread Safety
//
// Values are not safe for concurrent mutation. Clone a Value to hand an
// independent copy to another goroutine.
//
// # Related Packages
//
//   - github.com/signadot/vtree/path - path language
//   - github.com/signadot/vtree/gomap - Go values to and from Value
//   - github.com/signadot/vtree/format - JSON and YAML readers and writers
package ir
