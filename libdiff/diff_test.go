package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/mergeop"
)

func mustJSON(t *testing.T, s string) ir.Value {
	t.Helper()
	v, err := format.ReadJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func lines(cs []Change) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.String()
	}
	return res
}

var diffTests = []struct {
	name     string
	from, to string
	want     []string
}{
	{
		name: "equal",
		from: `{"a":[1,{"b":2}]}`,
		to:   `{"a":[1,{"b":2}]}`,
	},
	{
		name: "map keys",
		from: `{"a":1,"b":2,"c":{"d":true}}`,
		to:   `{"a":1,"c":{"d":false},"e":"x"}`,
		want: []string{
			"- /b: 2",
			"~ /c/d: true -> false",
			`+ /e: x`,
		},
	},
	{
		name: "array grows",
		from: `{"l":[1,2]}`,
		to:   `{"l":[1,3,4,5]}`,
		want: []string{
			"~ /l[1]: 2 -> 3",
			"+ /l[2]: 4",
			"+ /l[3]: 5",
		},
	},
	{
		name: "array shrinks",
		from: `[1,2,3]`,
		to:   `[1]`,
		want: []string{
			"- /[1]: 2",
			"- /[2]: 3",
		},
	},
	{
		name: "type change",
		from: `{"a":"1"}`,
		to:   `{"a":1}`,
		want: []string{"~ /a: 1 -> 1"},
	},
	{
		name: "text edit",
		from: `{"s":"hello big world"}`,
		to:   `{"s":"hello bog world"}`,
		want: []string{`~ /s: "hello b[-i-]{+o+}g world"`},
	},
	{
		name: "text replace",
		from: `{"s":"abc"}`,
		to:   `{"s":"xyz"}`,
		want: []string{"~ /s: abc -> xyz"},
	},
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			got := lines(Diff(mustJSON(t, tc.from), mustJSON(t, tc.to)))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatchRoundTrip(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			from, to := mustJSON(t, tc.from), mustJSON(t, tc.to)
			changes := Diff(from, to)
			got, err := Patch(from, changes)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(to, got); diff != "" {
				t.Errorf("forward (-want +got):\n%s", diff)
			}
			back, err := Patch(to, Reverse(changes))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(from, back); diff != "" {
				t.Errorf("reverse (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONPatch(t *testing.T) {
	for _, tc := range diffTests {
		from, to := mustJSON(t, tc.from), mustJSON(t, tc.to)
		if from.Type != ir.MapType {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			op, err := mergeop.JSONPatch().Instance(JSONPatch(Diff(from, to)))
			if err != nil {
				t.Fatal(err)
			}
			got, err := op.Patch(from)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(to, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatchConflict(t *testing.T) {
	changes := Diff(mustJSON(t, `{"a":1}`), mustJSON(t, `{"a":2}`))
	_, err := Patch(mustJSON(t, `{"a":3}`), changes)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("got %v", err)
	}
	changes = Diff(mustJSON(t, `{}`), mustJSON(t, `{"a":2}`))
	_, err = Patch(mustJSON(t, `{"a":3}`), changes)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("got %v", err)
	}
}

func TestPointer(t *testing.T) {
	changes := Diff(mustJSON(t, `{"a/b":{"c~":[0]}}`), mustJSON(t, `{"a/b":{"c~":[1]}}`))
	if len(changes) != 1 {
		t.Fatalf("got %v", lines(changes))
	}
	if got := Pointer(changes[0].Path); got != "/a~1b/c~0/0" {
		t.Errorf("got %q", got)
	}
}
