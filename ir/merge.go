package ir

import (
	"log/slog"

	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/path"
)

type mergeOpts struct {
	logger *slog.Logger
}

// MergeOption configures Merge.
type MergeOption func(*mergeOpts)

// MergeLogger has Merge log each leaf it overwrites to l.
func MergeLogger(l *slog.Logger) MergeOption {
	return func(o *mergeOpts) { o.logger = l }
}

// Merge merges src into v. See the package documentation for the rules.
func (v *Value) Merge(src Value, opts ...MergeOption) error {
	return Merge(v, src, opts...)
}

// Merge merges src into dst.
//
// A Nil dst becomes a copy of src and a Nil src changes nothing. Maps merge
// key by key and arrays index by index, appending elements past the end of
// dst. Any other pair of differing types is a *TypeError naming the type
// dst holds. Equal scalar types are overwritten by src.
//
// Map keys are visited in sorted order, so on error the entries sorting
// before the failing key have already been merged.
func Merge(dst *Value, src Value, opts ...MergeOption) error {
	o := &mergeOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil && debug.Merge() {
		o.logger = debug.Logger()
	}
	return mergeAt(dst, src, nil, o)
}

func mergeAt(dst *Value, src Value, at path.Path, o *mergeOpts) error {
	if src.Type == NilType {
		return nil
	}
	if dst.Type == NilType {
		*dst = src.Clone()
		o.log(at, "nil", src)
		return nil
	}
	if src.Type != dst.Type {
		te := typeErr(src, mergeName(dst.Type))
		te.Path = at
		return te
	}
	switch dst.Type {
	case MapType:
		if dst.Map == nil {
			dst.Map = make(map[string]Value, len(src.Map))
		}
		for _, k := range src.Keys() {
			sv := src.Map[k]
			cur, ok := dst.Map[k]
			if !ok {
				dst.Map[k] = sv.Clone()
				o.log(at.Append(path.Ident(k)), "insert", sv)
				continue
			}
			if err := mergeAt(&cur, sv, at.Append(path.Ident(k)), o); err != nil {
				return err
			}
			dst.Map[k] = cur
		}
	case ArrayType:
		for i, sv := range src.Array {
			if i >= len(dst.Array) {
				dst.Array = append(dst.Array, sv.Clone())
				o.log(at.Append(path.Index(i)), "append", sv)
				continue
			}
			if err := mergeAt(&dst.Array[i], sv, at.Append(path.Index(i)), o); err != nil {
				return err
			}
		}
	default:
		old := *dst
		*dst = src.Clone()
		if o.logger != nil {
			o.logger.Debug("merge", "op", "overwrite", "path", at.String(), "old", Describe(old), "new", Describe(src))
		}
	}
	return nil
}

func (o *mergeOpts) log(at path.Path, op string, v Value) {
	if o.logger == nil {
		return
	}
	o.logger.Debug("merge", "op", op, "path", at.String(), "value", Describe(v))
}

func mergeName(t Type) string {
	switch t {
	case BoolType:
		return "a bool"
	case IntType:
		return "a integer"
	case FloatType:
		return "a float"
	case StringType:
		return "a string"
	case MapType:
		return "a map"
	case ArrayType:
		return "a array"
	}
	return "nil"
}
