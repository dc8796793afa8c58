package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recordsettings/recordsettings/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Validate the settings schema of every record type",
	PreRunE: readConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, catalog, err := daemon.LoadSettings(&cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		for _, name := range registry.Types() {
			schema, err := registry.Resolve(name)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "%s: %d settings %v\n", name, len(schema), schema.Keys())
		}

		if catalog != nil {
			_, _ = fmt.Fprintf(out, "languages: %v\n", catalog.Languages())
		}

		_, _ = fmt.Fprintln(out, "settings schema is valid")

		return nil
	},
}
