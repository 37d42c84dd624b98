package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rustyeddy/survival/sim"
	"gopkg.in/yaml.v3"
)

// Config is the complete tool configuration.
type Config struct {
	Engine   EngineConfig  `json:"engine" yaml:"engine"`
	Defaults sim.Inputs    `json:"defaults" yaml:"defaults"`
	Server   ServerConfig  `json:"server" yaml:"server"`
	Journal  JournalConfig `json:"journal" yaml:"journal"`
	Log      LogConfig     `json:"log" yaml:"log"`
}

// EngineConfig tunes the simulator itself.
type EngineConfig struct {
	ResamplePoints int `json:"resample_points" yaml:"resample_points"`
	// Workers is the number of goroutines per run; 0 means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`
}

// ServerConfig controls `survival serve`.
type ServerConfig struct {
	Addr    string `json:"addr" yaml:"addr"`
	Workers int    `json:"workers" yaml:"workers"`
	// Timeout bounds a single HTTP simulation request, e.g. "10s".
	Timeout string `json:"timeout" yaml:"timeout"`
}

// ParseTimeout converts the timeout string to time.Duration. An empty
// string means no timeout.
func (s ServerConfig) ParseTimeout() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.Timeout)
}

// JournalConfig contains run journaling parameters
type JournalConfig struct {
	Type      string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	BandsFile string `json:"bands_file,omitempty" yaml:"bands_file,omitempty"`
	RunsFile  string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

// isYAML reports whether path is read and written as YAML. Every other
// extension is JSON.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension).
// Fields missing from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// The defaults block uses different field names in JSON and YAML, so
	// the decoder must match the one SaveToFile picks for this path.
	if isYAML(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (YAML): %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config (JSON): %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Engine.ResamplePoints < 2 {
		return fmt.Errorf("engine.resample_points must be at least 2")
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers must not be negative")
	}
	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("defaults.vol_level: %w", err)
	}
	if c.Defaults.Paths < sim.MinPaths || c.Defaults.Paths > sim.MaxPaths {
		return fmt.Errorf("defaults.paths must be between %d and %d", sim.MinPaths, sim.MaxPaths)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.Workers <= 0 {
		return fmt.Errorf("server.workers must be positive")
	}
	if _, err := c.Server.ParseTimeout(); err != nil {
		return fmt.Errorf("server.timeout: %w", err)
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.BandsFile == "" || c.Journal.RunsFile == "" {
			return fmt.Errorf("journal runs_file and bands_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			ResamplePoints: sim.DefaultResamplePoints,
		},
		Defaults: sim.Inputs{
			RiskPerTrade: 0.01,
			WinRate:      0.52,
			AvgR:         1.15,
			VolLevel:     sim.VolMed,
			Paths:        sim.DefaultPaths,
		},
		Server: ServerConfig{
			Addr:    ":8080",
			Workers: 2,
			Timeout: "10s",
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./survival.sqlite",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
