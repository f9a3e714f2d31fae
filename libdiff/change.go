package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// Kind is the kind of a Change.
type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
	Text
)

var kindNames = [...]string{Insert: "insert", Delete: "delete", Replace: "replace", Text: "text"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Change records one difference. From is Nil for an Insert and To is Nil
// for a Delete. Edits is set for Text changes.
type Change struct {
	Path  path.Path
	Kind  Kind
	From  ir.Value
	To    ir.Value
	Edits []diffpatch.Diff
}

// String renders the change on one line: "+ path: to", "- path: from",
// "~ path: from -> to", or for text "~ path: t[-ex-]{+ext+}".
func (c Change) String() string {
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, c.To)
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, c.From)
	case Text:
		return fmt.Sprintf("~ %s: %q", c.Path, EditText(c.Edits))
	}
	return fmt.Sprintf("~ %s: %s -> %s", c.Path, c.From, c.To)
}

// EditText renders edits inline, deletions as [-x-] and insertions as {+x+}.
func EditText(edits []diffpatch.Diff) string {
	var b strings.Builder
	for _, e := range edits {
		switch e.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + e.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + e.Text + "+}")
		default:
			b.WriteString(e.Text)
		}
	}
	return b.String()
}

// Reverse returns the changes undoing changes, in path order.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, Kind: c.Kind, From: c.To, To: c.From}
		switch c.Kind {
		case Insert:
			r.Kind = Delete
		case Delete:
			r.Kind = Insert
		case Text:
			r.Edits = make([]diffpatch.Diff, len(c.Edits))
			for j, e := range c.Edits {
				switch e.Type {
				case diffpatch.DiffInsert:
					e.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					e.Type = diffpatch.DiffInsert
				}
				r.Edits[j] = e
			}
		}
		res[i] = r
	}
	return res
}
