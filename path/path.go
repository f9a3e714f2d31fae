package path

import (
	"slices"
	"strconv"
	"strings"
)

type Kind int

const (
	IdentKind Kind = iota
	IndexKind
)

func (k Kind) String() string {
	switch k {
	case IdentKind:
		return "Identifier"
	case IndexKind:
		return "Index"
	default:
		return "<unknown kind>"
	}
}

// Node is a single path segment: either a map identifier or an array
// index. Node is comparable.
type Node struct {
	Kind  Kind
	Ident string
	Index int
}

func Ident(s string) Node {
	return Node{Kind: IdentKind, Ident: s}
}

func Index(i int) Node {
	return Node{Kind: IndexKind, Index: i}
}

func (n Node) IsIndex() bool {
	return n.Kind == IndexKind
}

// String returns the segment as it appears in a path string, without any
// leading '/'.
func (n Node) String() string {
	if n.Kind == IndexKind {
		return "[" + strconv.Itoa(n.Index) + "]"
	}
	if needsQuote(n.Ident) {
		return quote(n.Ident)
	}
	return n.Ident
}

// Path is an ordered sequence of segments. The empty Path denotes the root.
type Path []Node

// FromNodes builds a Path from a copy of nodes.
func FromNodes(nodes ...Node) Path {
	return slices.Clone(Path(nodes))
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// String returns the canonical form of p, which parses back to a Path equal
// to p.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for i, n := range p {
		if n.Kind == IdentKind || i == 0 {
			b.WriteByte('/')
		}
		b.WriteString(n.String())
	}
	return b.String()
}

// Key returns a string usable as a map key which is equal for equal paths.
func (p Path) Key() string {
	return p.String()
}

func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}

// Append returns a new Path consisting of p followed by nodes. p is not
// modified.
func (p Path) Append(nodes ...Node) Path {
	res := make(Path, 0, len(p)+len(nodes))
	res = append(res, p...)
	return append(res, nodes...)
}

// Parent returns p without its last segment. The parent of the root is the
// root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return slices.Clone(p[:len(p)-1])
}

func (p Path) Last() (Node, bool) {
	if len(p) == 0 {
		return Node{}, false
	}
	return p[len(p)-1], true
}

// HasPrefix reports whether q is a prefix of p.
func (p Path) HasPrefix(q Path) bool {
	return len(q) <= len(p) && slices.Equal(p[:len(q)], q)
}

// Compare orders paths segment by segment, identifiers before indices.
func (p Path) Compare(o Path) int {
	for i := range min(len(p), len(o)) {
		a, b := p[i], o[i]
		if a.Kind != b.Kind {
			if a.Kind == IdentKind {
				return -1
			}
			return 1
		}
		if a.Kind == IdentKind {
			if c := strings.Compare(a.Ident, b.Ident); c != 0 {
				return c
			}
			continue
		}
		if a.Index != b.Index {
			if a.Index < b.Index {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(p) < len(o):
		return -1
	case len(p) > len(o):
		return 1
	}
	return 0
}

func isIdentByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := range len(s) {
		if !isIdentByte(s[i]) {
			return true
		}
	}
	return false
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := range len(s) {
		c := s[i]
		if c == '\'' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('\'')
	return b.String()
}
