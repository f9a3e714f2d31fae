package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runSet(cfg, cc.In, cc.Out, args)
}

func runSet(cfg *SetConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	nv, err := parseValue(args[1])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	if cfg.InPlace {
		if file == "" || file == "-" {
			return fmt.Errorf("%w: -i requires a file", cli.ErrUsage)
		}
		return setInPlace(cfg, file, p, nv)
	}
	doc, err := cfg.readDoc(in, file)
	if err != nil {
		return err
	}
	if _, err := doc.SetPath(p, nv); err != nil {
		return err
	}
	return cfg.writeDoc(w, doc)
}

// setInPlace rewrites file. JSON files are edited in place so the rest of
// the document keeps its layout.
func setInPlace(cfg *SetConfig, file string, p path.Path, nv ir.Value) error {
	if cfg.Verbose {
		theLog.Info("set", "file", file, "path", p.String())
	}
	f, err := format.ForFile(file)
	if err != nil {
		return fmt.Errorf("cannot rewrite %s: %w", file, err)
	}
	if f.IsJSON() {
		d, err := os.ReadFile(file)
		if err != nil {
			return &format.IOError{Op: "read", Origin: file, Err: err}
		}
		d, err = format.SetJSON(d, p, nv)
		if err != nil {
			return err
		}
		if debug.Set() {
			debug.Log("set in place", "file", file, "path", p.String())
		}
		return writeFile(file, d)
	}
	doc, err := format.ReadFile(file)
	if err != nil {
		return err
	}
	if _, err := doc.SetPath(p, nv); err != nil {
		return err
	}
	d, err := format.Encode(doc, f, cfg.encOpts()...)
	if err != nil {
		return err
	}
	return writeFile(file, d)
}

func writeFile(file string, d []byte) error {
	if err := os.WriteFile(file, d, 0644); err != nil {
		return &format.IOError{Op: "write", Origin: file, Err: err}
	}
	return nil
}
