package mergeop

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatch(t *testing.T) {
	doc := `{"a":1,"b":{"c":"x","d":[1,2]},"e":null}`
	tests := []struct {
		pattern string
		want    bool
	}{
		{`null`, true},
		{`{}`, true},
		{`{"a":1}`, true},
		{`{"a":null,"b":{"c":"x"}}`, true},
		{`{"a":2}`, false},
		{`{"a":1.0}`, false},
		{`{"z":null}`, false},
		{`{"b":{"d":[1,null]}}`, true},
		{`{"b":{"d":[1]}}`, false},
		{`[1]`, false},
	}
	for _, tc := range tests {
		if got := Match(mustJSON(t, doc), mustJSON(t, tc.pattern)); got != tc.want {
			t.Errorf("%s: got %t want %t", tc.pattern, got, tc.want)
		}
	}
}

func TestTrim(t *testing.T) {
	doc := mustJSON(t, `{"a":1,"b":{"c":"x","d":2},"l":[{"n":1,"m":1},{"n":2,"m":2}]}`)
	pattern := mustJSON(t, `{"b":{"c":null},"l":[{"n":2}],"q":1}`)
	want := mustJSON(t, `{"b":{"c":"x"},"l":[{"n":2}]}`)
	if diff := cmp.Diff(want, Trim(pattern, doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMatchTrimOps(t *testing.T) {
	doc := mustJSON(t, `{"kind":"svc","spec":{"port":80}}`)
	ok, err := MatchOp().Instance(mustJSON(t, `{"kind":"svc"}`))
	if err != nil {
		t.Fatal(err)
	}
	trim, err := TrimOp().Instance(mustJSON(t, `{"spec":null}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Apply(doc, ok, trim)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustJSON(t, `{"spec":{"port":80}}`), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	bad, err := MatchOp().Instance(mustJSON(t, `{"kind":"job"}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(doc, bad); !errors.Is(err, ErrNoMatch) {
		t.Errorf("got %v", err)
	}
}
