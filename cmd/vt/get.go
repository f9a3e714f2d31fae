package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// ErrNotFound is returned when a path does not resolve.
var ErrNotFound = errors.New("not found")

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runGet(cfg, cc.In, cc.Out, args)
}

func runGet(cfg *GetConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(in, file)
	if err != nil {
		return err
	}
	v, ok, err := ir.GetPath[ir.Value](doc, p)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	return cfg.writeDoc(w, v)
}
