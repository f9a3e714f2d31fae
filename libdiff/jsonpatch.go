package libdiff

import (
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// JSONPatch converts changes to an RFC 6902 patch document, ordered like
// Patch applies them.
func JSONPatch(changes []Change) ir.Value {
	ops := make([]ir.Value, 0, len(changes))
	var dels []Change
	for _, c := range changes {
		switch c.Kind {
		case Delete:
			dels = append(dels, c)
		case Insert:
			ops = append(ops, jsonOp("add", c.Path, c.To))
		default:
			to := c.To
			if c.Kind == Text {
				to = ir.FromString(textTo(c))
			}
			ops = append(ops, jsonOp("replace", c.Path, to))
		}
	}
	slices.SortStableFunc(dels, func(a, b Change) int {
		return b.Path.Compare(a.Path)
	})
	for _, c := range dels {
		ops = append(ops, ir.FromEntries(map[string]ir.Value{
			"op":   ir.FromString("remove"),
			"path": ir.FromString(Pointer(c.Path)),
		}))
	}
	return ir.FromValues(ops...)
}

func jsonOp(op string, p path.Path, v ir.Value) ir.Value {
	return ir.FromEntries(map[string]ir.Value{
		"op":    ir.FromString(op),
		"path":  ir.FromString(Pointer(p)),
		"value": v.Clone(),
	})
}

// Pointer returns the RFC 6901 JSON pointer for p, which must not contain
// negative indices.
func Pointer(p path.Path) string {
	var b strings.Builder
	for _, n := range p {
		b.WriteByte('/')
		if n.IsIndex() {
			b.WriteString(strconv.Itoa(n.Index))
			continue
		}
		b.WriteString(strings.NewReplacer("~", "~0", "/", "~1").Replace(n.Ident))
	}
	return b.String()
}
