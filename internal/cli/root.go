// Package cli implements the tree command-line interface.
//
// The generate command grows a tree into an in-memory scene graph and prints
// a summary or a JSON description of it. The config command prints the
// effective configuration as TOML, which is a convenient starting point for
// a --config file.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/willbeason/flowering-tree/internal/config"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	verbose    bool
	configPath string
}

// load returns the configuration file's settings, or the defaults when no
// file was given.
func (o *rootOptions) load() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

// NewRootCommand returns the tree command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "tree",
		Short:        "Grow a flowering tree into a scene graph",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with tree settings")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}
