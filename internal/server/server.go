package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"epochs/internal/domain"
	"epochs/internal/epoch"
	"epochs/internal/metrics"
	"epochs/internal/services/decode"
)

// Config carries the server's collaborators.
type Config struct {
	Decode    domain.DecodeService
	Metrics   *metrics.Metrics // optional; /metrics is 404 without it
	Logger    zerolog.Logger
	RateLimit int // requests per minute per IP; 0 disables
}

// Server routes HTTP requests to the decode service.
type Server struct {
	decode    domain.DecodeService
	metrics   *metrics.Metrics
	log       zerolog.Logger
	rateLimit int
}

// New returns a Server for cfg.
func New(cfg Config) *Server {
	return &Server{
		decode:    cfg.Decode,
		metrics:   cfg.Metrics,
		log:       cfg.Logger,
		rateLimit: cfg.RateLimit,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if s.rateLimit > 0 {
			r.Use(httprate.LimitByIP(s.rateLimit, time.Minute))
		}
		r.Get("/schemes", s.handleSchemes)
		r.Get("/convert/{scheme}/{raw}", s.handleConvert)
		r.Get("/encode/{scheme}", s.handleEncode)
		if s.metrics != nil {
			r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
		}
	})
	return r
}

func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.decode.Schemes())
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	scheme, err := epoch.ParseScheme(chi.URLParam(r, "scheme"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	raw, err := decode.ParseRaw(chi.URLParam(r, "raw"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	d, err := s.decode.Decode(scheme, raw)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	resp := ConvertResponse{
		Scheme:   scheme.Name(),
		Raw:      raw,
		DateTime: d.Text,
		RFC3339:  d.Time.Format(time.RFC3339Nano),
		Fallback: d.Fallback,
	}
	if d.Err != nil {
		resp.Error = d.Err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	scheme, err := epoch.ParseScheme(chi.URLParam(r, "scheme"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := decode.ParseTime(r.URL.Query().Get("t"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	raw, err := s.decode.Encode(scheme, t)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, EncodeResponse{Scheme: scheme.Name(), Raw: raw})
}

// statusFor maps conversion failures to 422 and anything else to 400.
func statusFor(err error) int {
	var ce *epoch.ConversionError
	if errors.As(err, &ce) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	if status == http.StatusUnprocessableEntity {
		resp.Kind = metrics.Outcome(err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
