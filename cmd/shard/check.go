package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	shard "github.com/grindlemire/go-shard"
	"github.com/grindlemire/go-shard/headless"
	"github.com/grindlemire/go-shard/internal/loader"
)

type checkResult struct {
	source string
	nodes  int
	size   shard.Size
	err    error
}

func newCheckCmd(a *app) *cobra.Command {
	var width, height float32

	cmd := &cobra.Command{
		Use:   "check <source...>",
		Short: "Build and measure descriptors concurrently and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			available := shard.Constraints{Width: axis(float64(width)), Height: axis(float64(height))}
			results := a.check(cmd.Context(), a.loader(cmd), args, available)

			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", r.source, r.err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d views, %s×%s)\n", r.source, r.nodes, num(r.size.Width), num(r.size.Height))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d descriptors failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().Float32Var(&width, "width", 0, "available width (0 is unconstrained)")
	cmd.Flags().Float32Var(&height, "height", 0, "available height (0 is unconstrained)")
	return cmd
}

// check renders every source on its own goroutine, bounded by
// render.concurrency. Each goroutine owns its Root; only the factory is shared.
func (a *app) check(ctx context.Context, l *loader.Loader, sources []string, available shard.Constraints) []checkResult {
	results := make([]checkResult, len(sources))
	factory := a.factory()

	g, ctx := errgroup.WithContext(ctx)
	if a.cfg.Render.Concurrency > 0 {
		g.SetLimit(a.cfg.Render.Concurrency)
	}
	for i, source := range sources {
		g.Go(func() error {
			results[i] = a.checkOne(ctx, factory, l, source, available)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (a *app) checkOne(ctx context.Context, factory *headless.Factory, l *loader.Loader, source string, available shard.Constraints) checkResult {
	res := checkResult{source: source}

	text, err := l.Load(ctx, source)
	if err != nil {
		res.err = err
		return res
	}

	root, err := shard.Render(factory, nil, text, shard.WithLogger(a.log))
	if err != nil {
		res.err = err
		return res
	}
	defer root.Release()

	if err := root.Measure(available); err != nil {
		res.err = err
		return res
	}
	res.nodes = root.ViewNode().Count()
	res.size = root.Size()

	a.log.Debug("checked descriptor", zap.String("source", source), zap.Int("nodes", res.nodes))
	return res
}
