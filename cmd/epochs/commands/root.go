package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"epochs/internal/app"
)

var (
	home       string
	configPath string
	schemeName string
	layoutName string
	fallback   string
	logLevel   string
	serverURL  string
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "epochs",
		Short:         "Decode integer timestamps from APFS, Java, Mozilla and Unix epochs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			path := configPath
			if path == "" {
				path = filepath.Join(home, app.ConfigFilename)
			}
			cfg, err := app.LoadConfig(path)
			if err != nil {
				return err
			}
			if cfg.Home != "" && !cmd.Flags().Changed("home") {
				home = cfg.Home
			}
			cfg.Home = home

			flags := cmd.Flags()
			if flags.Changed("scheme") {
				cfg.Scheme = schemeName
			}
			if flags.Changed("layout") {
				cfg.Layout = layoutName
			}
			if flags.Changed("fallback") {
				cfg.Fallback = fallback
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("server") {
				cfg.Server = serverURL
			}
			cfg.LogOutput = cmd.ErrOrStderr()
			cfg.LogConsole = true

			w, err := app.NewWire(cfg, true)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.epochs)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&layoutName, "layout", "", "output layout: default, iso or rfc3339")
	root.PersistentFlags().StringVar(&fallback, "fallback", "", "on unrepresentable values: none (error) or origin")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "decode on an epochsd instance at this URL")

	root.AddCommand(schemesCmd(), convertCmd(), encodeCmd(), batchCmd(), lastCmd())
	return root
}
