package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"epochs/internal/app"
	xlog "epochs/internal/log"
	"epochs/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		listen     string
		logLevel   string
		rateLimit  int
	)
	cmd := &cobra.Command{
		Use:          "epochsd",
		Short:        "Serve the epoch decoder over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = app.LoadConfig(configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("listen") {
				cfg.Listen = listen
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("rate-limit") {
				cfg.RateLimit = rateLimit
			}
			cfg.LogOutput = cmd.ErrOrStderr()
			cfg.LogService = "epochsd"

			w, err := app.NewWire(cfg, false)
			if err != nil {
				return err
			}
			srv := server.New(server.Config{
				Decode:    w.Decode,
				Metrics:   w.Metrics,
				Logger:    xlog.WithComponent(w.Log, "http"),
				RateLimit: cfg.RateLimit,
			})

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return srv.ListenAndServe(ctx, cfg.Listen)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "requests per minute per IP; 0 disables")
	return cmd
}
