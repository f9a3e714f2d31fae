package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vtree/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	differs, err := runDiff(cfg, cc.In, cc.Out, args)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func runDiff(cfg *DiffConfig, in io.Reader, w io.Writer, args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := cfg.readDoc(in, args[0])
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := cfg.readDoc(in, args[1])
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(from, to)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if cfg.JSONPatch {
		return true, cfg.writeDoc(w, libdiff.JSONPatch(changes))
	}
	c := newColors(cfg.colorize(w))
	for _, ch := range changes {
		line := ch.String()
		switch ch.Kind {
		case libdiff.Insert:
			line = c.insert(line)
		case libdiff.Delete:
			line = c.delete(line)
		default:
			line = c.change(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return true, err
		}
	}
	return true, nil
}
