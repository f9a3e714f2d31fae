package libdiff

import (
	"errors"
	"fmt"
	"slices"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/vtree/ir"
)

// ErrConflict is returned by Patch when a change does not match the value
// it applies to.
var ErrConflict = errors.New("patch conflict")

// Patch applies changes produced by Diff to v and returns the result. v is
// not modified. Deletions are applied last, deepest and highest index
// first, so array indices stay valid.
func Patch(v ir.Value, changes []Change) (ir.Value, error) {
	res := v.Clone()
	var dels []Change
	for _, c := range changes {
		switch c.Kind {
		case Delete:
			dels = append(dels, c)
			continue
		case Insert:
			if _, ok := res.Lookup(c.Path); ok && !c.Path.IsRoot() {
				return ir.Value{}, conflict(c, "already present")
			}
		case Replace:
			if err := expect(res, c, c.From); err != nil {
				return ir.Value{}, err
			}
		case Text:
			if err := expect(res, c, ir.FromString(diffpatch.New().DiffText1(c.Edits))); err != nil {
				return ir.Value{}, err
			}
			c.To = ir.FromString(textTo(c))
		}
		if _, err := res.SetPath(c.Path, c.To.Clone()); err != nil {
			return ir.Value{}, fmt.Errorf("%s: %w", c.Path, err)
		}
	}
	slices.SortStableFunc(dels, func(a, b Change) int {
		return b.Path.Compare(a.Path)
	})
	for _, c := range dels {
		if err := expect(res, c, c.From); err != nil {
			return ir.Value{}, err
		}
		res.Delete(c.Path)
	}
	return res, nil
}

func expect(v ir.Value, c Change, want ir.Value) error {
	got, ok := v.Lookup(c.Path)
	if !ok {
		return conflict(c, "missing")
	}
	if !ir.Equal(got, want) {
		return conflict(c, fmt.Sprintf("found %s, expected %s", ir.Describe(got), ir.Describe(want)))
	}
	return nil
}

func conflict(c Change, msg string) error {
	return fmt.Errorf("%w: %s at %s: %s", ErrConflict, c.Kind, c.Path, msg)
}

func textTo(c Change) string {
	if len(c.Edits) == 0 {
		return c.To.Str
	}
	return diffpatch.New().DiffText2(c.Edits)
}
