package mergeop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
)

func mustJSON(t *testing.T, s string) ir.Value {
	t.Helper()
	v, err := format.ReadJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestSymbols(t *testing.T) {
	want := []string{"delete", "json-patch", "match", "merge", "merge-patch", "pipe", "set", "trim"}
	if diff := cmp.Diff(want, Symbols()); diff != "" {
		t.Errorf("symbols (-want +got):\n%s", diff)
	}
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestOps(t *testing.T) {
	tests := []struct {
		name string
		sym  string
		arg  string
		doc  string
		want string
	}{
		{
			name: "merge",
			sym:  "merge",
			arg:  `{"a":{"y":2},"l":[3]}`,
			doc:  `{"a":{"x":1},"l":[1,2]}`,
			want: `{"a":{"x":1,"y":2},"l":[1,2,3]}`,
		},
		{
			name: "json-patch",
			sym:  "json-patch",
			arg:  `[{"op":"replace","path":"/a","value":5},{"op":"add","path":"/l/-","value":9}]`,
			doc:  `{"a":1,"l":[1]}`,
			want: `{"a":5,"l":[1,9]}`,
		},
		{
			name: "merge-patch",
			sym:  "merge-patch",
			arg:  `{"a":null,"l":[7],"m":{"k":"v"}}`,
			doc:  `{"a":1,"l":[1,2],"m":{"j":"w"}}`,
			want: `{"l":[7],"m":{"j":"w","k":"v"}}`,
		},
		{
			name: "set",
			sym:  "set",
			arg:  `{"/a/b":1,"/l[3]":"x"}`,
			doc:  `{"l":[0]}`,
			want: `{"a":{"b":1},"l":[0,null,null,"x"]}`,
		},
		{
			name: "delete one",
			sym:  "delete",
			arg:  `"/a"`,
			doc:  `{"a":1,"b":2}`,
			want: `{"b":2}`,
		},
		{
			name: "delete many",
			sym:  "delete",
			arg:  `["/l[0]","/missing/x"]`,
			doc:  `{"l":[1,2]}`,
			want: `{"l":[2]}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sym, err := Lookup(tc.sym)
			if err != nil {
				t.Fatal(err)
			}
			op, err := sym.Instance(mustJSON(t, tc.arg))
			if err != nil {
				t.Fatal(err)
			}
			doc := mustJSON(t, tc.doc)
			orig := doc.Clone()
			got, err := op.Patch(doc)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(mustJSON(t, tc.want), got); diff != "" {
				t.Errorf("patch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(orig, doc); diff != "" {
				t.Errorf("doc modified (-orig +now):\n%s", diff)
			}
		})
	}
}

func TestInstanceErrors(t *testing.T) {
	tests := []struct {
		sym string
		arg string
	}{
		{"json-patch", `{"op":"add"}`},
		{"set", `[1]`},
		{"set", `{"a[":1}`},
		{"delete", `5`},
		{"delete", `[{"a":1}]`},
		{"pipe", `3`},
		{"pipe", `"  "`},
	}
	for _, tc := range tests {
		sym, err := Lookup(tc.sym)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := sym.Instance(mustJSON(t, tc.arg)); err == nil {
			t.Errorf("%s %s: expected error", tc.sym, tc.arg)
		}
	}
}

func TestMergeTypeError(t *testing.T) {
	op, err := Merge().Instance(mustJSON(t, `{"a":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := op.Patch(mustJSON(t, `{"a":1}`)); err == nil {
		t.Fatal("expected type error")
	}
}

func TestParsePatch(t *testing.T) {
	doc := mustJSON(t, `{"a":1,"b":2}`)
	tests := []struct {
		name  string
		patch string
		want  string
		op    string
	}{
		{"array", `[{"op":"remove","path":"/a"}]`, `{"b":2}`, "json-patch"},
		{"named", `{"delete":"/b"}`, `{"a":1}`, "delete"},
		{"merge patch", `{"a":null,"c":3}`, `{"b":2,"c":3}`, "merge-patch"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, err := ParsePatch(mustJSON(t, tc.patch))
			if err != nil {
				t.Fatal(err)
			}
			if op.String() != tc.op {
				t.Errorf("op %s, want %s", op, tc.op)
			}
			got, err := Apply(doc, op)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(mustJSON(t, tc.want), got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyJSONPatch(t *testing.T) {
	got, err := ApplyJSONPatch(mustJSON(t, `{"a":[1,2]}`), []byte(`[{"op":"test","path":"/a/0","value":1},{"op":"remove","path":"/a/0"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustJSON(t, `{"a":[2]}`), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	_, err = ApplyJSONPatch(mustJSON(t, `{"a":[1]}`), []byte(`[{"op":"test","path":"/a/0","value":2}]`))
	if err == nil {
		t.Error("expected failed test op")
	}
}

func TestCreateMergePatch(t *testing.T) {
	from := mustJSON(t, `{"a":1,"b":{"c":2,"d":3}}`)
	to := mustJSON(t, `{"a":1,"b":{"c":4},"e":true}`)
	patch, err := CreateMergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustJSON(t, `{"b":{"c":4,"d":null},"e":true}`), patch); diff != "" {
		t.Errorf("patch (-want +got):\n%s", diff)
	}
	op, err := MergePatch().Instance(patch)
	if err != nil {
		t.Fatal(err)
	}
	got, err := op.Patch(from)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(to, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestPipe(t *testing.T) {
	op, err := Pipe().Instance(ir.FromString("cat"))
	if err != nil {
		t.Fatal(err)
	}
	doc := mustJSON(t, `{"a":[1,"x"]}`)
	got, err := op.Patch(doc)
	if err != nil {
		t.Skipf("cat unavailable: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = op.Patch(ir.FromString("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Str != "hello" {
		t.Errorf("got %q", got.Str)
	}
}
