// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/recordsettings/recordsettings/internal/config"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory holding main.toml")
}

var (
	configPath string // Path to the configuration directory

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "recordsettings",
		Short: "recordsettings stores arbitrary per-record settings",
		Long: `recordsettings keeps a configurable set of settings per record type,
renders them as a form field and stores the chosen options with every record.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// readConfig loads the configuration selected by --config into cfg.
func readConfig(_ *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.ReadConfig(configPath)

	return err
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
