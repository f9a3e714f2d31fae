package format

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"j": JSONFormat, "JSON": JSONFormat, "y": YAMLFormat, "yml": YAMLFormat} {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, f)
	}
	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrBadFormat)

	f, err := ForFile("/a/b/c.yaml")
	require.NoError(t, err)
	require.Equal(t, "yaml", f.String())
	_, err = ForFile("Makefile")
	require.ErrorIs(t, err, ErrBadFormat)
}

func TestReadJSON(t *testing.T) {
	v, err := ReadJSON([]byte(`{"a": [1, 2.5, "x", null, true], "big": 123456789012345678901234567890, "o": {}}`))
	require.NoError(t, err)

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	want := ir.FromEntries(map[string]ir.Value{
		"a":   ir.FromValues(ir.FromInt(1), ir.FromFloat(2.5), ir.FromString("x"), ir.Nil(), ir.FromBool(true)),
		"big": ir.FromBigInt(huge),
		"o":   ir.EmptyMap(),
	})
	require.True(t, ir.Equal(want, v), "got %s", v.Dump())

	_, err = ReadJSON([]byte(`{"a":`), Origin("x.json"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "x.json", pe.Origin)
	require.Contains(t, err.Error(), "x.json")
}

func TestWriteJSON(t *testing.T) {
	huge, _ := new(big.Int).SetString("-99999999999999999999", 10)
	v := ir.FromEntries(map[string]ir.Value{
		"b": ir.FromValues(ir.FromInt(1), ir.Nil()),
		"a": ir.FromString("<x>"),
		"h": ir.FromBigInt(huge),
	})
	d, err := WriteJSON(v)
	require.NoError(t, err)
	require.Equal(t, `{"a":"<x>","b":[1,null],"h":-99999999999999999999}`+"\n", string(d))

	d, err = WriteJSON(ir.FromValues(ir.FromInt(1)), Indent(2))
	require.NoError(t, err)
	require.Equal(t, "[\n  1\n]\n", string(d))

	_, err = WriteJSON(ir.FromValues(ir.FromFloat(math.Inf(1))))
	require.ErrorIs(t, err, ir.ErrUnsupported)
}

func TestYAMLRoundTrip(t *testing.T) {
	src := "name: web\nports:\n  - 80\n  - 443\nratio: 0.5\nenabled: true\nnothing: null\n"
	v, err := ReadYAML([]byte(src))
	require.NoError(t, err)
	port, ok, err := ir.Get[int](v, "/ports[1]")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 443, port)

	d, err := WriteYAML(v)
	require.NoError(t, err)
	back, err := ReadYAML(d)
	require.NoError(t, err)
	require.True(t, ir.Equal(v, back), "yaml:\n%s", d)

	_, err = ReadYAML([]byte("a: [1, 2"), Origin("bad.yaml"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	v, err := ReadFile(write("a.json", `{"x": {"y": 1}}`))
	require.NoError(t, err)
	y, ok, err := ir.Get[int](v, "/x/y")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, y)

	v, err = ReadFile(write("b.yml", "x: [a, b]\n"))
	require.NoError(t, err)
	s, _, err := ir.Get[string](v, "/x[-1]")
	require.NoError(t, err)
	require.Equal(t, "b", s)

	v, err = ReadFile(write("c.toml", "[server]\nPort = 8080\n"))
	require.NoError(t, err)
	p, ok, err := ir.Get[int](v, "/server/port")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8080, p)

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	var ioe *IOError
	require.ErrorAs(t, err, &ioe)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadFile(write("bad.json", "{"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, filepath.Join(dir, "bad.json"), pe.Origin)
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	v := ir.FromEntries(map[string]ir.Value{"k": ir.FromString("v")})
	require.NoError(t, Write(buf, v, YAMLFormat))
	require.Equal(t, "k: v\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(buf, v, JSONFormat))
	require.Equal(t, "{\"k\":\"v\"}\n", buf.String())

	back, err := Read(strings.NewReader(buf.String()), JSONFormat)
	require.NoError(t, err)
	require.True(t, ir.Equal(v, back))
}

func TestFromViper(t *testing.T) {
	vp := viper.New()
	vp.Set("Server.Port", 9090)
	vp.Set("debug", true)
	v, err := FromViper(vp)
	require.NoError(t, err)
	port, ok, err := ir.Get[int](v, "/server/port")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 9090, port)
	dbg, _, err := ir.Get[bool](v, "/debug")
	require.NoError(t, err)
	require.True(t, dbg)
}

func TestSetJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
		val  ir.Value
		want string
	}{
		{"replace", `{"a":1,"b":2}`, "/a", ir.FromInt(3), `{"a":3,"b":2}`},
		{"add key", `{"a":1}`, "/b", ir.FromString("x"), `{"a":1,"b":"x"}`},
		{"nested create", `{}`, "/a/b", ir.FromBool(true), `{"a":{"b":true}}`},
		{"scalar becomes object", `{"a":1}`, "/a/b", ir.FromInt(2), `{"a":{"b":2}}`},
		{"array element", `{"l":[1,2,3]}`, "/l[1]", ir.FromInt(9), `{"l":[1,9,3]}`},
		{"negative index", `{"l":[1,2,3]}`, "/l[-1]", ir.FromInt(9), `{"l":[1,2,9]}`},
		{"container value", `{"a":1}`, "/a", ir.FromValues(ir.FromInt(1)), `{"a":[1]}`},
		{"empty doc", ``, "/a", ir.FromInt(1), `{"a":1}`},
		{"root", `{"a":1}`, "/", ir.FromInt(1), `1`},
		{"dotted key", `{}`, "/'a.b'", ir.FromInt(1), `{"a.b":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetJSON([]byte(tt.doc), path.MustParse(tt.path), tt.val)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(got))
		})
	}

	doc := []byte(`{"l":[1]}`)
	got, err := SetJSON(doc, path.MustParse("/l[-2]"), ir.FromInt(0))
	var re *ir.RangeError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "/l[-2]", re.Path.String())
	require.Equal(t, string(doc), string(got))

	got, err = SetJSON(doc, path.MustParse("/m/l[9223372036854775807]"), ir.FromInt(0))
	require.ErrorAs(t, err, &re)
	require.Equal(t, "/m/l[9223372036854775807]", re.Path.String())
	require.Equal(t, string(doc), string(got))

	_, err = SetJSON([]byte(`{`), path.MustParse("/a"), ir.Nil())
	require.Error(t, err)
}
