package libdiff

import (
	"slices"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// Diff returns the changes turning from into to, sorted by path.
func Diff(from, to ir.Value) []Change {
	var res []Change
	diffAt(from, to, nil, &res)
	slices.SortStableFunc(res, func(a, b Change) int {
		return a.Path.Compare(b.Path)
	})
	return res
}

func diffAt(from, to ir.Value, at path.Path, res *[]Change) {
	if ir.Equal(from, to) {
		return
	}
	switch {
	case from.Type == ir.MapType && to.Type == ir.MapType:
		diffMap(from, to, at, res)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		diffArrayByIndex(from, to, at, res)
	case from.Type == ir.StringType && to.Type == ir.StringType:
		*res = append(*res, diffString(from.Str, to.Str, at))
	default:
		*res = append(*res, Change{Path: at, Kind: Replace, From: from.Clone(), To: to.Clone()})
	}
}

func diffMap(from, to ir.Value, at path.Path, res *[]Change) {
	for _, k := range from.Keys() {
		kp := at.Append(path.Ident(k))
		tv, ok := to.Map[k]
		if !ok {
			*res = append(*res, Change{Path: kp, Kind: Delete, From: from.Map[k].Clone()})
			continue
		}
		diffAt(from.Map[k], tv, kp, res)
	}
	for _, k := range to.Keys() {
		if _, ok := from.Map[k]; ok {
			continue
		}
		*res = append(*res, Change{Path: at.Append(path.Ident(k)), Kind: Insert, To: to.Map[k].Clone()})
	}
}

func diffArrayByIndex(from, to ir.Value, at path.Path, res *[]Change) {
	n := min(len(from.Array), len(to.Array))
	for i := range n {
		diffAt(from.Array[i], to.Array[i], at.Append(path.Index(i)), res)
	}
	for i := n; i < len(from.Array); i++ {
		*res = append(*res, Change{Path: at.Append(path.Index(i)), Kind: Delete, From: from.Array[i].Clone()})
	}
	for i := n; i < len(to.Array); i++ {
		*res = append(*res, Change{Path: at.Append(path.Index(i)), Kind: Insert, To: to.Array[i].Clone()})
	}
}

// diffString yields a Text change when the edit is at most half the
// shorter string, and a Replace otherwise.
func diffString(from, to string, at path.Path) Change {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			diffSize += len(d.Text)
		}
	}
	c := Change{Path: at, Kind: Replace, From: ir.FromString(from), To: ir.FromString(to)}
	if diffSize <= min(len(from), len(to))/2 {
		c.Kind = Text
		c.Edits = diffs
	}
	return c
}
