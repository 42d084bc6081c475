// Package config loads walletgate configuration from YAML and hot-reloads it
// when the file changes on disk.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/walletgate/walletgate/internal/alert"
)

// OracleConfig points at the risk-scoring service.
type OracleConfig struct {
	URL            string `yaml:"url"`
	Explain        bool   `yaml:"explain"`
	ExplainWithLLM bool   `yaml:"explain_with_llm"`
}

// Config holds all configurable parameters. The decision poll cadence and
// fail-open deadline are deliberately not here: they are fixed constants of
// the protocol, not per-deployment knobs.
type Config struct {
	Origin      string         `yaml:"origin"`
	Oracle      OracleConfig   `yaml:"oracle"`
	Alerts      []alert.Config `yaml:"alerts"`
	MetricsAddr string         `yaml:"metrics_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Origin: "walletgate",
		Oracle: OracleConfig{
			URL:            "http://localhost:8000",
			Explain:        true,
			ExplainWithLLM: true,
		},
	}
}

// Load reads configuration from path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Oracle.URL == "" {
		return nil, fmt.Errorf("config %q: oracle.url is required", path)
	}
	return cfg, nil
}

// Store is a hot-swappable configuration holder. Readers get a consistent
// snapshot; Reload swaps it atomically.
type Store struct {
	path string
	mu   sync.RWMutex
	cfg  *Config
}

// NewStore loads path and returns a Store around the result.
func NewStore(path string) (*Store, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, cfg: cfg}, nil
}

// Current returns the active configuration snapshot.
func (s *Store) Current() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Reload re-reads the backing file. On parse failure the previous
// configuration stays active.
func (s *Store) Reload() error {
	cfg, err := Load(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}
