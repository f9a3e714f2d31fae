package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vtree/mergeop"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runPatch(cfg, cc.In, cc.Out, args)
}

func runPatch(cfg *PatchConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	if (file == "" || file == "-") && args[0] == "-" {
		return fmt.Errorf("%w: patch and document cannot both be standard input", cli.ErrUsage)
	}
	pv, err := cfg.readDoc(in, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	var op mergeop.Op
	if cfg.Op == "" {
		op, err = mergeop.ParsePatch(pv)
	} else {
		var sym mergeop.Symbol
		sym, err = mergeop.Lookup(cfg.Op)
		if err != nil {
			return fmt.Errorf("%w: %w (have %v)", cli.ErrUsage, err, mergeop.Symbols())
		}
		op, err = sym.Instance(pv)
	}
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(in, file)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		theLog.Info("patch", "op", op.String())
	}
	res, err := mergeop.Apply(doc, op)
	if err != nil {
		return err
	}
	return cfg.writeDoc(w, res)
}
