package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"epochs/internal/epoch"
	"epochs/internal/services/decode"
)

// ConfigFilename is looked up under the home directory when no explicit
// config path is given.
const ConfigFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `yaml:"home,omitempty"`       // state directory, e.g. $HOME/.epochs
	Scheme    string `yaml:"scheme,omitempty"`     // default scheme name, e.g. "unix"
	Layout    string `yaml:"layout,omitempty"`     // default, iso or rfc3339
	Fallback  string `yaml:"fallback,omitempty"`   // none or origin
	LogLevel  string `yaml:"log_level,omitempty"`  // zerolog level name
	Workers   int    `yaml:"workers,omitempty"`    // batch concurrency; 0 = GOMAXPROCS
	Listen    string `yaml:"listen,omitempty"`     // epochsd listen address
	RateLimit int    `yaml:"rate_limit,omitempty"` // epochsd requests per minute per IP; 0 disables
	Server    string `yaml:"server,omitempty"`     // epochsd base URL; empty decodes locally

	LogOutput  io.Writer `yaml:"-"` // optional; defaults to os.Stderr
	LogConsole bool      `yaml:"-"` // human-readable logs (CLI)
	LogService string    `yaml:"-"` // service field on every log entry
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Scheme:   epoch.Unix.Name(),
		Layout:   decode.LayoutDefault.String(),
		Fallback: decode.FallbackNone.String(),
		LogLevel: "info",
		Listen:   ":8080",
	}
}

// DefaultHome returns ~/.epochs.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".epochs"), nil
}

// LoadConfig reads the YAML file at path over DefaultConfig. A missing file
// yields the defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every enumerated field names a known value.
func (c Config) Validate() error {
	if _, err := epoch.ParseScheme(c.Scheme); err != nil {
		return err
	}
	if _, err := decode.ParseLayout(c.Layout); err != nil {
		return err
	}
	if _, err := decode.ParseFallback(c.Fallback); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %d", c.RateLimit)
	}
	if c.Server != "" {
		u, err := url.Parse(c.Server)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("server must be an http(s) URL, got %q", c.Server)
		}
	}
	return nil
}
