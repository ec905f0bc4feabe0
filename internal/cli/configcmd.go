package cli

import (
	"github.com/spf13/cobra"

	"github.com/willbeason/flowering-tree/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded configuration", "path", root.configPath)
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}
}
