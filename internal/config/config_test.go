package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "merger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
sources:
  - a.csv
  - b.csv
log_level: info
currency: EUR
`)

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Sources)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "EUR", cfg.Currency)
	// untouched keys keep their defaults
	assert.Equal(t, "logs.txt", cfg.LogFile)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, false)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "sources: [a.csv\n")
	_, err := Load(path, false)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "no sources", mutate: func(c *Config) { c.Sources = nil }, wantErr: true},
		{name: "empty source", mutate: func(c *Config) { c.Sources = []string{"a.csv", ""} }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
		{name: "bad currency", mutate: func(c *Config) { c.Currency = "XX" }, wantErr: true},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "not a locale" }, wantErr: true},
		{name: "empty log file allowed", mutate: func(c *Config) { c.LogFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
