package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	shard "github.com/grindlemire/go-shard"
)

type renderOptions struct {
	width  float32
	height float32
	format string
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <source>",
		Short: "Build and measure a descriptor, then print the view tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			available := a.available(cmd, opts)
			format := opts.format
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Render.Format
			}

			text, err := a.loader(cmd).Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			root, err := shard.Render(a.factory(), nil, text, shard.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer root.Release()

			if err := root.Measure(available); err != nil {
				return err
			}

			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), root)
			case "tree":
				return writeTree(cmd.OutOrStdout(), root)
			default:
				return fmt.Errorf("unknown format %q (want tree or json)", format)
			}
		},
	}

	cmd.Flags().Float32Var(&opts.width, "width", 0, "available width (default: terminal width or render.default_width)")
	cmd.Flags().Float32Var(&opts.height, "height", 0, "available height (default: render.default_height, 0 is unconstrained)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "tree", "output format: tree or json")
	return cmd
}

// available resolves the viewport: flags first, then the terminal width, then
// configuration. A zero or missing axis is unconstrained.
func (a *app) available(cmd *cobra.Command, opts renderOptions) shard.Constraints {
	c := shard.Unconstrained()

	switch {
	case cmd.Flags().Changed("width"):
		c.Width = axis(float64(opts.width))
	case a.cfg.Render.DefaultWidth > 0:
		c.Width = axis(a.cfg.Render.DefaultWidth)
	default:
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil {
				c.Width = axis(float64(w))
			}
		}
	}

	if cmd.Flags().Changed("height") {
		c.Height = axis(float64(opts.height))
	} else {
		c.Height = axis(a.cfg.Render.DefaultHeight)
	}
	return c
}

func axis(v float64) float32 {
	if v <= 0 {
		return float32(math.NaN())
	}
	return float32(v)
}
