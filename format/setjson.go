package format

import (
	"bytes"
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SetJSON stores v at p inside the raw JSON document doc and returns the
// new document. The rest of doc is kept as is, including its formatting.
//
// Intermediate nodes follow ir.Value.SetPath: a missing or mistyped node is
// replaced by an empty object or a one element array, and arrays are padded
// with null. A negative index which does not resolve, or a positive one
// needing ir.MaxPad or more nulls of padding, is an *ir.RangeError
// and doc is returned unchanged. An empty doc stands for null.
func SetJSON(doc []byte, p path.Path, v ir.Value) ([]byte, error) {
	raw, err := WriteJSON(v)
	if err != nil {
		return doc, err
	}
	raw = bytes.TrimRight(raw, "\n")
	if len(bytes.TrimSpace(doc)) == 0 {
		doc = []byte("null")
	} else if !gjson.ValidBytes(doc) {
		return doc, &ParseError{Err: errInvalidJSON}
	}
	if len(p) == 0 {
		return raw, nil
	}

	orig := doc
	resolved := make(path.Path, len(p))
	for i, n := range p {
		parent := lookupJSON(doc, resolved[:i])
		if n.Kind == path.IdentKind {
			resolved[i] = n
			if !parent.IsObject() {
				if doc, err = setRawJSON(doc, resolved[:i], []byte("{}")); err != nil {
					return orig, err
				}
			}
			continue
		}
		size := 1
		if parent.IsArray() {
			size = len(parent.Array())
		}
		idx := n.Index
		if idx < 0 {
			idx += size
		}
		if idx < 0 || idx-size >= ir.MaxPad {
			return orig, &ir.RangeError{Value: big.NewInt(int64(n.Index)), Path: p[:i+1]}
		}
		resolved[i] = path.Index(idx)
		if !parent.IsArray() {
			if doc, err = setRawJSON(doc, resolved[:i], []byte("[null]")); err != nil {
				return orig, err
			}
		}
	}
	return setRawJSON(doc, resolved, raw)
}

func lookupJSON(doc []byte, p path.Path) gjson.Result {
	if len(p) == 0 {
		return gjson.ParseBytes(doc)
	}
	return gjson.GetBytes(doc, jsonPath(p, false))
}

func setRawJSON(doc []byte, p path.Path, raw []byte) ([]byte, error) {
	if len(p) == 0 {
		return raw, nil
	}
	return sjson.SetRawBytes(doc, jsonPath(p, true), raw)
}

// jsonPath renders p in the dotted syntax of gjson and sjson. Numeric
// object keys need a leading ':' for sjson.
func jsonPath(p path.Path, forSet bool) string {
	parts := make([]string, len(p))
	for i, n := range p {
		if n.Kind == path.IndexKind {
			parts[i] = strconv.Itoa(n.Index)
			continue
		}
		part := escapeJSONPath(n.Ident)
		if forSet && isDigits(n.Ident) {
			part = ":" + part
		}
		parts[i] = part
	}
	return strings.Join(parts, ".")
}

func escapeJSONPath(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', ':':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
