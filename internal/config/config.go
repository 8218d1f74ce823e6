// Package config loads the cubescan YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the whole configuration file.
type Config struct {
	Scanner  ScannerConfig  `yaml:"scanner"`
	Throttle ThrottleConfig `yaml:"throttle"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
}

// ScannerConfig tunes the perception pipeline.
type ScannerConfig struct {
	ConfidenceFloor  float64 `yaml:"confidence_floor"`
	MinScore         float64 `yaml:"min_score"`
	EdgeRejection    bool    `yaml:"edge_rejection"`
	EdgeThreshold    float64 `yaml:"edge_threshold"`
	ClusterThreshold float64 `yaml:"cluster_threshold"`
	RegionFraction   float64 `yaml:"region_fraction"`
	Detector         string  `yaml:"detector"`
}

// ThrottleConfig bounds the adaptive scan rate.
type ThrottleConfig struct {
	MinRate int `yaml:"min_rate"`
	MaxRate int `yaml:"max_rate"`
	SlowMs  int `yaml:"slow_ms"`
}

// Slow returns SlowMs as a duration.
func (t ThrottleConfig) Slow() time.Duration {
	return time.Duration(t.SlowMs) * time.Millisecond
}

// StorageConfig locates the database and the session state file.
type StorageConfig struct {
	DBPath    string `yaml:"db_path"`
	StatePath string `yaml:"state_path"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scanner: ScannerConfig{
			ConfidenceFloor:  0.4,
			MinScore:         70,
			EdgeRejection:    true,
			EdgeThreshold:    40,
			ClusterThreshold: 50,
			RegionFraction:   0.6,
			Detector:         "center",
		},
		Throttle: ThrottleConfig{MinRate: 8, MaxRate: 20, SlowMs: 50},
		Storage: StorageConfig{
			DBPath:    "~/.cubescan/cubescan.db",
			StatePath: "~/.cubescan/state.json",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns ~/.cubescan/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubescan", "config.yaml"), nil
}

// Load reads the configuration from a YAML file. Fields the file omits keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path if it exists and returns the defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	s := c.Scanner
	if s.ConfidenceFloor < 0 || s.ConfidenceFloor > 1 {
		return fmt.Errorf("scanner.confidence_floor must be in [0,1], got %v", s.ConfidenceFloor)
	}
	if s.MinScore < 0 || s.MinScore > 100 {
		return fmt.Errorf("scanner.min_score must be in [0,100], got %v", s.MinScore)
	}
	if s.EdgeThreshold <= 0 {
		return fmt.Errorf("scanner.edge_threshold must be positive, got %v", s.EdgeThreshold)
	}
	if s.ClusterThreshold <= 0 {
		return fmt.Errorf("scanner.cluster_threshold must be positive, got %v", s.ClusterThreshold)
	}
	if s.RegionFraction <= 0 || s.RegionFraction > 1 {
		return fmt.Errorf("scanner.region_fraction must be in (0,1], got %v", s.RegionFraction)
	}
	switch s.Detector {
	case "center", "none":
	default:
		return fmt.Errorf("scanner.detector must be \"center\" or \"none\", got %q", s.Detector)
	}

	t := c.Throttle
	if t.MinRate <= 0 || t.MaxRate < t.MinRate {
		return fmt.Errorf("throttle.min_rate and throttle.max_rate must satisfy 0 < min <= max, got %d and %d", t.MinRate, t.MaxRate)
	}
	if t.SlowMs <= 0 {
		return fmt.Errorf("throttle.slow_ms must be positive, got %d", t.SlowMs)
	}

	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	if c.Storage.StatePath == "" {
		return fmt.Errorf("storage.state_path is required")
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
