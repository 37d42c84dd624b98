package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/survival/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, sim.DefaultResamplePoints, cfg.Engine.ResamplePoints)
	assert.Equal(t, sim.VolMed, cfg.Defaults.VolLevel)
	assert.Equal(t, 0.01, cfg.Defaults.RiskPerTrade)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid config", func(*Config) {}, ""},
		{"resample too small", func(c *Config) { c.Engine.ResamplePoints = 1 }, "engine.resample_points must be at least 2"},
		{"negative workers", func(c *Config) { c.Engine.Workers = -1 }, "engine.workers must not be negative"},
		{"missing vol level", func(c *Config) { c.Defaults.VolLevel = 0 }, "unknown volatility level"},
		{"too few paths", func(c *Config) { c.Defaults.Paths = 10 }, "defaults.paths must be between 250 and 10000"},
		{"missing addr", func(c *Config) { c.Server.Addr = "" }, "server.addr is required"},
		{"zero server workers", func(c *Config) { c.Server.Workers = 0 }, "server.workers must be positive"},
		{"bad timeout", func(c *Config) { c.Server.Timeout = "soon" }, "server.timeout"},
		{"unknown journal", func(c *Config) { c.Journal.Type = "postgres" }, "journal.type must be"},
		{"csv without files", func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }, "journal runs_file and bands_file required"},
		{"sqlite without path", func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} }, "journal db_path required"},
		{"no journal", func(c *Config) { c.Journal = JournalConfig{Type: "none"} }, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
		{"other extension is json", ".conf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Defaults.VolLevel = sim.VolExtreme
			cfg.Defaults.Paths = 5000
			path := filepath.Join(tmpDir, "test"+tt.ext)

			err := cfg.SaveToFile(path)
			require.NoError(t, err)

			_, err = os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "defaults:\n  vol_level: high\n  paths: 1000\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, sim.VolHigh, cfg.Defaults.VolLevel)
	assert.Equal(t, 1000, cfg.Defaults.Paths)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadEditedDefaultsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survival.conf")
	require.NoError(t, Default().SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(data), `"riskPerTrade": 0.01`, `"riskPerTrade": 0.03`, 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.03, cfg.Defaults.RiskPerTrade)
}

func TestLoadYAMLInNonYAMLFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survival.conf")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  risk_per_trade: 0.03\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsUnknownVolLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  vol_level: CALM\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestServerParseTimeout(t *testing.T) {
	tests := []struct {
		timeout  string
		expected string
		wantErr  bool
	}{
		{"10s", "10s", false},
		{"1m", "1m0s", false},
		{"", "0s", false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			d, err := ServerConfig{Timeout: tt.timeout}.ParseTimeout()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, d.String())
			}
		})
	}
}
