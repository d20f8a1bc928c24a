package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"epochs/internal/services/decode"
)

func encodeCmd() *cobra.Command {
	return addSchemeFlag(&cobra.Command{
		Use:   "encode <time>",
		Short: "Encode a calendar time as a raw timestamp",
		Long: "Encode a calendar time as a raw timestamp under --scheme.\n\n" +
			"The time is RFC 3339 or \"YYYY-MM-DD[ HH:MM:SS[.fffffffff]]\" in UTC.\n" +
			"Precision finer than the scheme's unit is truncated toward the past.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := decode.ParseTime(args[0])
			if err != nil {
				return err
			}
			scheme, err := selectedScheme(cmd, appCtx.Scheme)
			if err != nil {
				return err
			}
			raw, err := encodeTime(cmd.Context(), scheme, t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		},
	})
}
