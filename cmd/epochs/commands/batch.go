package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// batch [file]: decode one timestamp per line; stdin when file is omitted or "-".
func batchCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Decode one raw timestamp per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := selectedScheme(cmd, appCtx.Scheme)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			report, err := appCtx.Decode.Batch(cmd.Context(), in, cmd.OutOrStdout(), scheme)
			if err != nil {
				return err
			}
			appCtx.Log.Info().
				Int("lines", report.Lines).
				Int("decoded", report.Decoded).
				Int("failed", report.Failed).
				Msg("batch complete")
			if strict && report.Failed > 0 {
				return fmt.Errorf("%d of %d lines failed", report.Failed, report.Lines)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any line fails")
	return addSchemeFlag(cmd)
}
