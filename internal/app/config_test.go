package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epochs/internal/app"
	"epochs/internal/epoch"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), app.ConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Missing_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
scheme: java
layout: iso
fallback: origin
log_level: debug
workers: 4
listen: 127.0.0.1:9000
rate_limit: 120
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.Scheme)
	assert.Equal(t, "iso", cfg.Layout)
	assert.Equal(t, "origin", cfg.Fallback)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, 120, cfg.RateLimit)
}

func TestLoadConfig_Empty_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoadConfig_UnknownKey_Fails(t *testing.T) {
	_, err := app.LoadConfig(writeConfig(t, "sheme: unix\n"))
	assert.Error(t, err)
}

func TestLoadConfig_BadScheme_Fails(t *testing.T) {
	_, err := app.LoadConfig(writeConfig(t, "scheme: ntfs\n"))
	assert.ErrorIs(t, err, epoch.ErrUnknownScheme)
}

func TestValidate(t *testing.T) {
	cfg := app.DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Layout = "rfc822"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Fallback = "zero"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Workers = -1
	assert.Error(t, bad.Validate())
}

func TestNewWire_Stateful(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Home = filepath.Join(t.TempDir(), "home")
	cfg.Scheme = "mozilla"
	cfg.LogOutput = &bytes.Buffer{}

	w, err := app.NewWire(cfg, true)
	require.NoError(t, err)
	require.NotNil(t, w.Store)
	assert.Equal(t, epoch.Mozilla, w.Scheme)

	d, err := w.Decode.Decode(epoch.Unix, 1_600_000_000)
	require.NoError(t, err)
	assert.Equal(t, "2020-09-13 12:26:40", d.Text)

	_, err = os.Stat(filepath.Join(cfg.Home, "state.json"))
	assert.NoError(t, err)
}

func TestNewWire_Stateless(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.LogOutput = &bytes.Buffer{}

	w, err := app.NewWire(cfg, false)
	require.NoError(t, err)
	assert.Nil(t, w.Store)

	last, err := w.Decode.Last()
	require.NoError(t, err)
	assert.Equal(t, epoch.Unix, last.Scheme)
}

func TestNewWire_StatefulNeedsHome(t *testing.T) {
	_, err := app.NewWire(app.DefaultConfig(), true)
	assert.Error(t, err)
}

func TestValidate_Server(t *testing.T) {
	cfg := app.DefaultConfig()
	for _, ok := range []string{"http://localhost:8080", "https://epochs.example.net/"} {
		cfg.Server = ok
		assert.NoError(t, cfg.Validate(), ok)
	}
	for _, bad := range []string{"localhost:8080", "ftp://host", "http://"} {
		cfg.Server = bad
		assert.Error(t, cfg.Validate(), bad)
	}
}

func TestNewWire_Remote(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.LogOutput = &bytes.Buffer{}

	w, err := app.NewWire(cfg, false)
	require.NoError(t, err)
	assert.Nil(t, w.Remote)

	cfg.Server = "http://127.0.0.1:8080/"
	w, err = app.NewWire(cfg, false)
	require.NoError(t, err)
	require.NotNil(t, w.Remote)
	assert.Equal(t, "http://127.0.0.1:8080", w.Remote.Base)
}
