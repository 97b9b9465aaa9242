// Package cli implements the pageassist command line.
package cli

import (
	"fmt"

	"page-assist/internal/config"
	"page-assist/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

// NewRootCommand assembles pageassist and its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pageassist",
		Short:         "Page assistant backend: relay page actions to a text-generation model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./config.yaml or ./config/config.yaml)")

	root.AddCommand(
		newServeCommand(opts),
		newRenderCommand(),
		newSendCommand(opts),
	)
	return root
}
