package main

import (
	"context"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vtree/ir"
	"golang.org/x/sync/errgroup"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runMerge(context.Background(), cfg, cc.In, cc.Out, args)
}

// runMerge reads all files concurrently, then merges them in argument
// order.
func runMerge(ctx context.Context, cfg *MergeConfig, in io.Reader, w io.Writer, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	docs := make([]ir.Value, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := cfg.readDoc(in, file)
			if err != nil {
				return fmt.Errorf("error decoding %s: %w", file, err)
			}
			docs[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var opts []ir.MergeOption
	if cfg.Verbose {
		opts = append(opts, ir.MergeLogger(theLog))
	}
	var res ir.Value
	for i, doc := range docs {
		if err := ir.Merge(&res, doc, opts...); err != nil {
			return fmt.Errorf("error merging %s: %w", files[i], err)
		}
	}
	return cfg.writeDoc(w, res)
}
