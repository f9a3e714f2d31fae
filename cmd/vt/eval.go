package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vtree/eval"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runEval(cfg, cc.In, cc.Out, args)
}

func runEval(cfg *EvalConfig, in io.Reader, w io.Writer, args []string) error {
	opts := []eval.Option{eval.Vars(cfg.Env)}
	if cfg.Expand {
		file, err := fileArg(args, 0)
		if err != nil {
			return err
		}
		doc, err := cfg.readDoc(in, file)
		if err != nil {
			return err
		}
		if err := eval.Expand(&doc, opts...); err != nil {
			return err
		}
		return cfg.writeDoc(w, doc)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(in, file)
	if err != nil {
		return err
	}
	v, err := eval.Eval(args[0], doc, opts...)
	if err != nil {
		return err
	}
	return cfg.writeDoc(w, v)
}

// envFunc records a name=val definition, val being read as YAML.
func envFunc(env map[string]any, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	v, err := parseValue(val)
	if err != nil {
		return err
	}
	env[name] = v.ToAny()
	return nil
}
