package app

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"epochs/internal/domain"
	"epochs/internal/epoch"
	xlog "epochs/internal/log"
	"epochs/internal/metrics"
	"epochs/internal/remote"
	"epochs/internal/services/decode"
	"epochs/internal/store"
)

const remoteTimeout = 10 * time.Second

// Wire bundles the logger, stores and services for the binaries.
type Wire struct {
	Config  Config
	Log     zerolog.Logger
	Scheme  epoch.Scheme      // default scheme from Config
	Store   domain.StateStore // nil when built stateless
	Decode  *decode.Service
	Metrics *metrics.Metrics
	Remote  *remote.HTTP // set when Config.Server names an epochsd instance
}

// NewWire constructs the dependency graph from cfg. When stateful is set the
// home directory is created and the last input is persisted there.
func NewWire(cfg Config, stateful bool) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scheme, _ := epoch.ParseScheme(cfg.Scheme)
	layout, _ := decode.ParseLayout(cfg.Layout)
	fallback, _ := decode.ParseFallback(cfg.Fallback)

	logger := xlog.New(xlog.Config{
		Level:   cfg.LogLevel,
		Output:  cfg.LogOutput,
		Console: cfg.LogConsole,
		Service: cfg.LogService,
	})

	var states domain.StateStore
	if stateful {
		if cfg.Home == "" {
			return nil, fmt.Errorf("home directory required")
		}
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, err
		}
		states = store.NewStateFileStore(cfg.Home)
	}

	m := metrics.New()
	svc := decode.New(states,
		decode.WithLayout(layout),
		decode.WithFallback(fallback),
		decode.WithWorkers(cfg.Workers),
		decode.WithLogger(xlog.WithComponent(logger, "decode")),
		decode.WithMetrics(m),
	)

	w := &Wire{
		Config:  cfg,
		Log:     logger,
		Scheme:  scheme,
		Store:   states,
		Decode:  svc,
		Metrics: m,
	}
	if cfg.Server != "" {
		w.Remote = remote.NewHTTP(cfg.Server, &http.Client{Timeout: remoteTimeout})
	}
	return w, nil
}
