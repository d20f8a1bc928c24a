package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func schemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List supported epoch schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := listSchemes(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range schemes {
				fmt.Fprintf(out, "%-8s %-30s origin %s\n", s.Name, s.Label, s.Origin.UTC().Format("2006-01-02T15:04:05Z07:00"))
			}
			return nil
		},
	}
}
