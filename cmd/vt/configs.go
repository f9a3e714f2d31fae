package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
)

type MainConfig struct {
	J       bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y       bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color   bool `cli:"name=color desc='output with color'"`
	Verbose bool `cli:"name=v desc='log what is done to stderr'"`
	Indent  int  `cli:"name=indent desc='json indentation'"`

	InFormat, OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the format forced by options, if any.
func (cfg *MainConfig) inFormat() (format.Format, bool) {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return 0, false
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.YAMLFormat
}

// readDoc reads the document named by file, or in when file is "" or "-".
// Files are decoded by extension unless a format is forced; standard input
// defaults to YAML, which also reads JSON.
func (cfg *MainConfig) readDoc(in io.Reader, file string) (ir.Value, error) {
	f, forced := cfg.inFormat()
	if file == "" || file == "-" {
		if !forced {
			f = format.YAMLFormat
		}
		v, err := format.Read(in, f, format.Origin("<stdin>"))
		if err != nil {
			return ir.Value{}, err
		}
		return v, nil
	}
	if cfg.Verbose {
		theLog.Info("read", "file", file)
	}
	if !forced {
		return format.ReadFile(file)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return ir.Value{}, &format.IOError{Op: "read", Origin: file, Err: err}
	}
	return format.Parse(d, f, format.Origin(file))
}

func (cfg *MainConfig) encOpts() []format.Option {
	if cfg.Indent > 0 {
		return []format.Option{format.Indent(cfg.Indent)}
	}
	return nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, v ir.Value) error {
	return format.Write(w, v, cfg.outFormat(), cfg.encOpts()...)
}

// colorize reports whether output to w should be colored: -color forces
// it, otherwise only terminals get color.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type colors struct {
	insert, delete, change func(a ...any) string
}

func newColors(on bool) *colors {
	mk := func(attr color.Attribute) func(a ...any) string {
		c := color.New(attr)
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &colors{
		insert: mk(color.FgGreen),
		delete: mk(color.FgRed),
		change: mk(color.FgYellow),
	}
}

// parseValue reads a command line value as YAML, so 5 is an integer and
// foo is a string.
func parseValue(s string) (ir.Value, error) {
	if s == "" {
		return ir.FromString(""), nil
	}
	return format.ReadYAML(bytes.TrimSpace([]byte(s)), format.Origin("argument"))
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	InPlace bool `cli:"name=i desc='rewrite the file in place'"`

	Set *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse   bool `cli:"name=r desc='reverse the diff'"`
	JSONPatch bool `cli:"name=p desc='output the diff as a json patch'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expand bool `cli:"name=x desc='expand $[expr] references in the document instead of evaluating an expression'"`
	Env    map[string]any

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Op string `cli:"name=op desc='patch operation, default json-patch for arrays and merge-patch for maps'"`

	Patch *cli.Command
}
