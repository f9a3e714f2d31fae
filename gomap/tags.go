package gomap

import (
	"reflect"
	"strings"
	"sync"
)

// fieldInfo describes one encoded struct field.
type fieldInfo struct {
	// name is the map key the field is stored under.
	name string
	// index is the reflect index path, more than one element for fields
	// of inlined structs.
	index     []int
	omitEmpty bool
}

type fieldsKey struct {
	typ reflect.Type
	tag string
}

var fieldCache sync.Map // fieldsKey -> []fieldInfo

// structFields returns the encoded fields of the struct type typ, reading
// struct tags under the key tag.
//
// Tags take the form `vt:"name,omitempty"`. A name of "-" skips the field
// and the inline flag flattens a struct field into its parent. Embedded
// structs without a name are inlined too. Only exported fields are used.
func structFields(typ reflect.Type, tag string) []fieldInfo {
	key := fieldsKey{typ, tag}
	if fs, ok := fieldCache.Load(key); ok {
		return fs.([]fieldInfo)
	}
	fs := collectFields(typ, tag, nil, map[reflect.Type]bool{})
	fieldCache.Store(key, fs)
	return fs
}

func collectFields(typ reflect.Type, tag string, prefix []int, seen map[reflect.Type]bool) []fieldInfo {
	if seen[typ] {
		return nil
	}
	seen[typ] = true
	defer delete(seen, typ)

	var res []fieldInfo
	for i := range typ.NumField() {
		f := typ.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" && opts == "" {
			continue
		}
		index := append(append([]int(nil), prefix...), i)
		inline := hasOpt(opts, "inline") || (f.Anonymous && name == "")
		if inline && f.Type.Kind() == reflect.Struct {
			res = append(res, collectFields(f.Type, tag, index, seen)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		res = append(res, fieldInfo{
			name:      name,
			index:     index,
			omitEmpty: hasOpt(opts, "omitempty"),
		})
	}
	return res
}

func hasOpt(opts, opt string) bool {
	for o := range strings.SplitSeq(opts, ",") {
		if strings.TrimSpace(o) == opt {
			return true
		}
	}
	return false
}

// isEmptyValue reports whether val is empty in the omitempty sense: false,
// zero numbers, empty strings and containers, and nil pointers and
// interfaces.
func isEmptyValue(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Bool:
		return !val.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return val.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return val.Float() == 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return val.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return val.IsNil()
	case reflect.Struct:
		return val.IsZero()
	}
	return false
}
