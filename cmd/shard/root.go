package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grindlemire/go-shard/headless"
	"github.com/grindlemire/go-shard/internal/config"
	"github.com/grindlemire/go-shard/internal/loader"
	"github.com/grindlemire/go-shard/internal/observability"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "shard",
		Short:         "Render JSON view descriptors into measured view trees.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			observability.InitializeLogger(cfg.Logger)
			a.log = observability.GetLogger()
			a.log.Debug("starting shard", zap.String("version", version), zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			observability.Sync()
		},
	}
	cmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")
	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./shard.yaml)")

	cmd.AddCommand(
		newRenderCmd(a),
		newKindCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) loader(cmd *cobra.Command) *loader.Loader {
	return loader.New(a.cfg.Loader,
		loader.WithStdin(cmd.InOrStdin()),
		loader.WithLogger(a.log.Named("loader")),
	)
}

func (a *app) factory() *headless.Factory {
	return headless.NewFactory(headless.WithLogger(a.log.Named("headless")))
}
