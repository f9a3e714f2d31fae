package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vtree/ir"
)

func doc() ir.Value {
	return ir.FromEntries(map[string]ir.Value{
		"name": ir.FromString("srv"),
		"base": ir.FromInt(8000),
		"tags": ir.FromSlice([]string{"a", "b"}),
		"sub":  ir.FromEntries(map[string]ir.Value{"on": ir.FromBool(true)}),
	})
}

func TestEval(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Value
	}{
		{`base + 1`, ir.FromInt(8001)},
		{`name + ".local"`, ir.FromString("srv.local")},
		{`len(tags)`, ir.FromInt(2)},
		{`sub.on`, ir.FromBool(true)},
		{`get("/tags[-1]")`, ir.FromString("b")},
		{`get("/nope")`, ir.Nil()},
		{`has("/sub/on")`, ir.FromBool(true)},
		{`has("/sub/off")`, ir.FromBool(false)},
		{`base / 2`, ir.FromFloat(4000.0)},
		{`[1, "x"]`, ir.FromValues(ir.FromInt(1), ir.FromString("x"))},
		{`extra * 2`, ir.FromInt(42)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Eval(tc.in, doc(), Vars(Env{"extra": 21}))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	for _, in := range []string{`missing + 1`, `get("/a[")`, `1 +`} {
		if _, err := Eval(in, doc()); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestWhen(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`base > 10`, true},
		{`tags`, true},
		{`filter(tags, # == "z")`, false},
		{`name == ""`, false},
		{`get("/nope")`, false},
	}
	for _, tc := range tests {
		got, err := When(tc.in, doc())
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %t want %t", tc.in, got, tc.want)
		}
	}
}

func TestExpandString(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"abc", "abc"},
		{"$[", "$["},
		{"$[name]", "srv"},
		{" $[name]", " srv"},
		{"$[name", "$[name"},
		{"$[name].$[base]", "srv.8000"},
		{"x $[ name ] y", "x srv y"},
		{"$abc", "$abc"},
		{"$[tags]", `["a","b"]`},
		{`$["a\]b"]`, "a]b"},
		{"$[get('/nope')]", "null"},
	}
	for _, tc := range tests {
		got, err := ExpandString(tc.in, doc())
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.out {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.out)
		}
	}
}

func TestExpand(t *testing.T) {
	v := ir.FromEntries(map[string]ir.Value{
		"name":  ir.FromString("srv"),
		"base":  ir.FromInt(8000),
		"host":  ir.FromString("$[name].local"),
		"port":  ir.FromString("$[base + 1]"),
		"debug": ir.FromString("$[base > 0]"),
		"list":  ir.FromValues(ir.FromString("$[whereami()]"), ir.FromInt(3)),
	})
	if err := Expand(&v); err != nil {
		t.Fatal(err)
	}
	want := ir.FromEntries(map[string]ir.Value{
		"name":  ir.FromString("srv"),
		"base":  ir.FromInt(8000),
		"host":  ir.FromString("srv.local"),
		"port":  ir.FromInt(8001),
		"debug": ir.FromBool(true),
		"list":  ir.FromValues(ir.FromString("/list[0]"), ir.FromInt(3)),
	})
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestExpandErrorLeavesRoot(t *testing.T) {
	v := ir.FromEntries(map[string]ir.Value{
		"a": ir.FromString("$[nope]"),
		"b": ir.FromString("$[1 + 1]"),
	})
	orig := v.Clone()
	if err := Expand(&v); err == nil {
		t.Fatal("expected error")
	}
	if diff := cmp.Diff(orig, v); diff != "" {
		t.Errorf("root changed (-orig +got):\n%s", diff)
	}
}
