package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func lastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the remembered last input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := appCtx.Decode.Last()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scheme:   %s\n", st.Scheme.Label())
			fmt.Fprintf(out, "value:    %d\n", st.Raw)
			fmt.Fprintf(out, "datetime: %s\n", st.DateTime)
			if st.UpdatedUTC != 0 {
				fmt.Fprintf(out, "updated:  %s\n", time.Unix(st.UpdatedUTC, 0).UTC().Format(time.RFC3339))
			}
			return nil
		},
	}
}
