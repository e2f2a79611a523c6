// Package config holds neonmart configuration, loaded from a YAML file with
// sensible defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all neonmart configuration.
type Config struct {
	// StateDir is where durable state (cart, user label, logs) lives.
	StateDir string `yaml:"state_dir"`

	// CatalogPath optionally overrides the embedded catalog.
	CatalogPath string `yaml:"catalog_path"`

	// UI tunes presentation timing.
	UI UIConfig `yaml:"ui"`

	// Logging controls the category file logger.
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig tunes presentation timing. Durations are strings ("1.5s",
// "100ms"); unparsable or missing values fall back to defaults.
type UIConfig struct {
	SettleDelay   string `yaml:"settle_delay"`    // loading -> populated/empty
	StaggerDelay  string `yaml:"stagger_delay"`   // per-card entrance offset
	ToastTTL      string `yaml:"toast_ttl"`       // auto-dismiss duration
	AuthRoundTrip string `yaml:"auth_round_trip"` // simulated login delay
	SkeletonCards int    `yaml:"skeleton_cards"`  // placeholders while loading
}

// LoggingConfig controls the category file logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
}

// Presentation timing defaults, matching the storefront's original feel.
const (
	DefaultSettleDelay   = 1500 * time.Millisecond
	DefaultStaggerDelay  = 100 * time.Millisecond
	DefaultToastTTL      = 3 * time.Second
	DefaultAuthRoundTrip = 1500 * time.Millisecond
	DefaultSkeletonCards = 4
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StateDir: DefaultStateDir(),
		UI: UIConfig{
			SkeletonCards: DefaultSkeletonCards,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// DefaultStateDir returns the per-user state directory. Overridable with
// NEONMART_STATE_DIR.
func DefaultStateDir() string {
	if dir := os.Getenv("NEONMART_STATE_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".neonmart"
	}
	return filepath.Join(home, ".neonmart")
}

// Load reads configuration from path. A missing file yields defaults; a
// malformed file is an error so a typo never silently reverts settings.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.StateDir == "" {
		cfg.StateDir = DefaultStateDir()
	}
	if cfg.UI.SkeletonCards <= 0 {
		cfg.UI.SkeletonCards = DefaultSkeletonCards
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultPath returns the config file location inside the state directory.
func DefaultPath() string {
	return filepath.Join(DefaultStateDir(), "config.yaml")
}

func parseDelay(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// GetSettleDelay returns the loading settle delay. Zero is a valid
// configured value: the lifecycle then resolves on the first tick.
func (u UIConfig) GetSettleDelay() time.Duration {
	return parseDelay(u.SettleDelay, DefaultSettleDelay)
}

// GetStaggerDelay returns the per-card entrance offset.
func (u UIConfig) GetStaggerDelay() time.Duration {
	return parseDelay(u.StaggerDelay, DefaultStaggerDelay)
}

// GetToastTTL returns the toast auto-dismiss duration.
func (u UIConfig) GetToastTTL() time.Duration {
	return parseDelay(u.ToastTTL, DefaultToastTTL)
}

// GetAuthRoundTrip returns the simulated login round-trip delay.
func (u UIConfig) GetAuthRoundTrip() time.Duration {
	return parseDelay(u.AuthRoundTrip, DefaultAuthRoundTrip)
}
