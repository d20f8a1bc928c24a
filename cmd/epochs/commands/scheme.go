package commands

import (
	"github.com/spf13/cobra"

	"epochs/internal/epoch"
)

// addSchemeFlag registers --scheme/-s on the commands that decode or encode.
func addSchemeFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringVarP(&schemeName, "scheme", "s", "", "epoch scheme: apfs, java, mozilla or unix")
	return cmd
}

// selectedScheme returns the --scheme flag when given, else fallback.
func selectedScheme(cmd *cobra.Command, fallback epoch.Scheme) (epoch.Scheme, error) {
	if cmd.Flags().Changed("scheme") {
		return epoch.ParseScheme(schemeName)
	}
	return fallback, nil
}
