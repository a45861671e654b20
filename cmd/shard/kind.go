package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	shard "github.com/grindlemire/go-shard"
)

var errNoKind = errors.New("descriptor has no root kind")

func newKindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kind <source>",
		Short: "Print the top-level kind of a view descriptor node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.loader(cmd).Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			kind, ok := shard.ExtractKind(text)
			if !ok {
				return fmt.Errorf("%s: %w", args[0], errNoKind)
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}
}
