package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"epochs/internal/services/decode"
)

// convert [raw]: decode raw, or the remembered input when raw is omitted.
func convertCmd() *cobra.Command {
	return addSchemeFlag(&cobra.Command{
		Use:   "convert [raw]",
		Short: "Decode a raw timestamp into a calendar date/time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			last, err := appCtx.Decode.Last()
			if err != nil {
				return err
			}

			// Without a value, re-decode the last input under its own scheme.
			def, raw := last.Scheme, last.Raw
			if len(args) == 1 {
				def = appCtx.Scheme
				if raw, err = decode.ParseRaw(args[0]); err != nil {
					return err
				}
			}
			scheme, err := selectedScheme(cmd, def)
			if err != nil {
				return err
			}

			d, err := decodeRaw(cmd.Context(), scheme, raw)
			if err != nil {
				return err
			}
			if d.Fallback {
				appCtx.Log.Warn().Err(d.Err).Msg("showing origin instead")
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Text)
			return nil
		},
	})
}
