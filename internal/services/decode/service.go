package decode

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"epochs/internal/domain"
	"epochs/internal/epoch"
	"epochs/internal/metrics"
)

// Service renders conversions and remembers the last input.
//
// The state store is optional; without one nothing is persisted and Last
// always reports the defaults.
type Service struct {
	store    domain.StateStore
	layout   Layout
	fallback Fallback
	workers  int
	log      zerolog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLayout sets the rendering layout.
func WithLayout(l Layout) Option { return func(s *Service) { s.layout = l } }

// WithFallback sets the policy for values that do not convert.
func WithFallback(f Fallback) Option { return func(s *Service) { s.fallback = f } }

// WithWorkers bounds batch concurrency; n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option { return func(s *Service) { s.workers = n } }

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

// WithMetrics records conversion outcomes in m.
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

// WithClock overrides the clock used to stamp saved state.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// New returns a decode service backed by the given store, which may be nil.
func New(store domain.StateStore, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   zerolog.Nop(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// Schemes lists the supported schemes in registry order.
func (s *Service) Schemes() []domain.SchemeInfo {
	all := epoch.AllSchemes()
	out := make([]domain.SchemeInfo, 0, len(all))
	for _, sc := range all {
		out = append(out, domain.SchemeInfo{
			Name:   sc.Name(),
			Label:  sc.Label(),
			Unit:   sc.Unit().String(),
			Origin: sc.Origin(),
		})
	}
	return out
}

// Decode converts raw under scheme and renders it.
//
// With FallbackOrigin a conversion failure is not returned as an error: the
// result carries the origin date, Fallback is set and Err holds the reason.
// Successful and fallback results are saved as the last input.
func (s *Service) Decode(scheme epoch.Scheme, raw int64) (domain.Decoded, error) {
	d, err := s.decode(scheme, raw)
	if err != nil {
		return domain.Decoded{}, err
	}
	s.remember(d)
	return d, nil
}

func (s *Service) decode(scheme epoch.Scheme, raw int64) (domain.Decoded, error) {
	if !scheme.Valid() {
		return domain.Decoded{}, fmt.Errorf("%w: %d", epoch.ErrUnknownScheme, uint8(scheme))
	}
	t, err := epoch.Convert(scheme, raw)
	s.metrics.ObserveConversion(scheme, err)
	if err == nil {
		return domain.Decoded{Scheme: scheme, Raw: raw, Time: t, Text: Format(t, s.layout)}, nil
	}

	s.log.Debug().Err(err).Str("scheme", scheme.Name()).Int64("raw", raw).Msg("conversion failed")
	if s.fallback != FallbackOrigin {
		return domain.Decoded{}, err
	}
	origin := scheme.Origin()
	return domain.Decoded{
		Scheme:   scheme,
		Raw:      raw,
		Time:     origin,
		Text:     Format(origin, s.layout),
		Fallback: true,
		Err:      err,
	}, nil
}

func (s *Service) remember(d domain.Decoded) {
	if s.store == nil {
		return
	}
	state := domain.State{
		Scheme:     d.Scheme,
		Raw:        d.Raw,
		DateTime:   d.Text,
		UpdatedUTC: s.now().UTC().Unix(),
	}
	// Losing the remembered input is not worth failing the decode over.
	if err := s.store.SaveState(state); err != nil {
		s.log.Warn().Err(err).Msg("save state")
	}
}

// Encode returns the raw value for t under scheme.
func (s *Service) Encode(scheme epoch.Scheme, t time.Time) (int64, error) {
	raw, err := epoch.Encode(scheme, t)
	if err != nil {
		s.log.Debug().Err(err).Str("scheme", scheme.Name()).Time("time", t).Msg("encode failed")
	}
	return raw, err
}

// Last returns the remembered input, or the defaults when there is none.
func (s *Service) Last() (domain.State, error) {
	if s.store == nil {
		return domain.DefaultState(), nil
	}
	st, ok, err := s.store.LoadState()
	if err != nil {
		return domain.State{}, err
	}
	if !ok {
		return domain.DefaultState(), nil
	}
	return st, nil
}

// Compile-time assertion that Service implements domain.DecodeService.
var _ domain.DecodeService = (*Service)(nil)
