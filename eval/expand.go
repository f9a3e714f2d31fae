package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// Expand replaces $[expr] references in the string leaves of root. All
// expressions see root as it was before expansion. On error root is left
// unchanged.
func Expand(root *ir.Value, opts ...Option) error {
	snap := root.Clone()
	x := &expander{root: snap, env: NewEnv(snap, opts...)}
	res, err := x.expand(snap.Clone(), nil)
	if err != nil {
		return err
	}
	*root = res
	return nil
}

type expander struct {
	root ir.Value
	env  Env
}

func (x *expander) expand(v ir.Value, at path.Path) (ir.Value, error) {
	switch v.Type {
	case ir.MapType:
		for _, k := range v.Keys() {
			c, err := x.expand(v.Map[k], at.Append(path.Ident(k)))
			if err != nil {
				return ir.Value{}, err
			}
			v.Map[k] = c
		}
	case ir.ArrayType:
		for i := range v.Array {
			c, err := x.expand(v.Array[i], at.Append(path.Index(i)))
			if err != nil {
				return ir.Value{}, err
			}
			v.Array[i] = c
		}
	case ir.StringType:
		if raw := getRaw(v.Str); raw != "" {
			r, err := run(raw, x.env, x.root, at)
			if err != nil {
				return ir.Value{}, fmt.Errorf("%s: %w", at, err)
			}
			return fromResult(r)
		}
		s, err := expandString(v.Str, x.env, x.root, at)
		if err != nil {
			return ir.Value{}, fmt.Errorf("%s: %w", at, err)
		}
		return ir.FromString(s), nil
	}
	return v, nil
}

// ExpandString interpolates the $[expr] references in s.
func ExpandString(s string, root ir.Value, opts ...Option) (string, error) {
	return expandString(s, NewEnv(root, opts...), root, nil)
}

// getRaw returns the expression of s when s is a single reference.
func getRaw(s string) string {
	if !strings.HasPrefix(s, "$[") {
		return ""
	}
	end, ok := scanRef(s, 2)
	if !ok || end != len(s) {
		return ""
	}
	return unescape(s[2 : end-1])
}

// scanRef returns the offset just past the ] closing a reference whose body
// starts at i.
func scanRef(s string, i int) (int, bool) {
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case ']':
			return i + 1, true
		}
		i++
	}
	return 0, false
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return strings.TrimSpace(s)
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		buf = append(buf, s[i])
	}
	return strings.TrimSpace(string(buf))
}

func expandString(s string, env Env, root ir.Value, at path.Path) (string, error) {
	var out strings.Builder
	i := 0
	for {
		j := strings.Index(s[i:], "$[")
		if j == -1 {
			out.WriteString(s[i:])
			return out.String(), nil
		}
		j += i
		out.WriteString(s[i:j])
		end, ok := scanRef(s, j+2)
		if !ok {
			out.WriteString(s[j:])
			return out.String(), nil
		}
		key := unescape(s[j+2 : end-1])
		r, err := run(key, env, root, at)
		if err != nil {
			return "", err
		}
		text, err := resultText(r)
		if err != nil {
			return "", fmt.Errorf("could not render result of %q: %w", key, err)
		}
		out.WriteString(text)
		i = end
	}
}

// resultText renders scalars in their canonical text form and containers as
// JSON.
func resultText(x any) (string, error) {
	if s, ok := x.(string); ok {
		return s, nil
	}
	v, err := fromResult(x)
	if err != nil {
		return "", err
	}
	switch v.Type {
	case ir.NilType:
		return "null", nil
	case ir.ArrayType, ir.MapType:
		d, err := format.WriteJSON(v)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(d)), nil
	}
	return v.AsString()
}
