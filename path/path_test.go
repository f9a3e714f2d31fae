package path

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringRoundTrip(t *testing.T) {
	paths := []Path{
		{},
		{Ident("a")},
		{Ident("a"), Index(0), Ident("b"), Ident("c"), Index(1)},
		{Index(0)},
		{Index(0), Index(-1), Ident("x")},
		{Ident("with space"), Ident("dot.ted"), Ident("quote'd"), Ident("")},
	}
	for _, p := range paths {
		s := p.String()
		got, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("round trip of %q (-want +got):\n%s", s, diff)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		p    Path
		want string
	}{
		{nil, "/"},
		{Path{Ident("a"), Index(0), Ident("b")}, "/a[0]/b"},
		{Path{Index(2), Index(3)}, "/[2][3]"},
		{Path{Ident("a b")}, "/'a b'"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyAsMapKey(t *testing.T) {
	m := map[string]int{}
	m[MustParse("/a[0]").Key()] = 1
	m[FromNodes(Ident("a"), Index(0)).Key()] = 2
	if len(m) != 1 || m["/a[0]"] != 2 {
		t.Errorf("expected equal paths to share a key, got %v", m)
	}
	nodes := map[Node]bool{Ident("a"): true, Index(0): true}
	if !nodes[Ident("a")] || nodes[Ident("b")] {
		t.Errorf("Node should be usable as a map key")
	}
}

func TestAppendParent(t *testing.T) {
	p := MustParse("/a/b")
	q := p.Append(Index(1))
	if got := q.String(); got != "/a/b[1]" {
		t.Errorf("Append: got %q", got)
	}
	if got := p.String(); got != "/a/b" {
		t.Errorf("Append modified receiver: %q", got)
	}
	if !q.Parent().Equal(p) {
		t.Errorf("Parent() = %s, want %s", q.Parent(), p)
	}
	if !Path(nil).Parent().IsRoot() {
		t.Errorf("parent of root should be root")
	}
	if !q.HasPrefix(p) || p.HasPrefix(q) {
		t.Errorf("HasPrefix mismatch")
	}
	last, ok := q.Last()
	if !ok || last != Index(1) {
		t.Errorf("Last() = %v, %v", last, ok)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"/", "/", 0},
		{"/a", "/b", -1},
		{"/a", "/a/b", -1},
		{"/a[1]", "/a[0]", 1},
		{"/a/b", "/a[0]", -1},
	}
	for _, tt := range tests {
		if got := MustParse(tt.a).Compare(MustParse(tt.b)); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
