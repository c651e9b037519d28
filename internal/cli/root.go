package cli

import (
	"github.com/spf13/cobra"

	"github.com/goserg/volunteerhub/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Debug      bool
}

// NewRootCommand creates the root command of the volunteerhub binary.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "volunteerhub",
		Short: "Volunteer and nonprofit matching server",
		Long: `volunteerhub connects volunteers with nonprofits. Nonprofits post
opportunities, volunteers apply, and both sides get recommendations
ranked by skill and interest overlap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPath, "path to the toml config")
	cmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "trace logging, overrides server.debug_mode")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewRankCommand(opts))
	cmd.AddCommand(NewCertgenCommand(opts))

	return cmd
}
