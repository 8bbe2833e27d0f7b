package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/artgrid/internal/collect"
	"github.com/five82/artgrid/internal/gallery"
	"github.com/five82/artgrid/internal/itunes"
)

// Config holds the settings artgrid reads at startup.
type Config struct {
	Endpoint          string
	Limit             int
	Media             itunes.Media
	SwapInterval      time.Duration
	CollectDelay      time.Duration
	RequestsPerMinute int
	LogFile           string
	UserAgent         string
}

const (
	defaultConfigPath        = "~/.config/artgrid/config.toml"
	defaultLogFile           = "~/.local/state/artgrid/artgrid.log"
	defaultUserAgent         = "artgrid/0.1"
	defaultRequestsPerMinute = 20

	// maxLimit is the largest page size the search endpoint honours.
	maxLimit = 200
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:          itunes.DefaultEndpoint,
		Limit:             itunes.DefaultLimit,
		Media:             itunes.DefaultMedia,
		SwapInterval:      gallery.DefaultSwapInterval,
		CollectDelay:      collect.DefaultDelayPerResult,
		RequestsPerMinute: defaultRequestsPerMinute,
		LogFile:           mustExpand(defaultLogFile),
		UserAgent:         defaultUserAgent,
	}
}

type rawConfig struct {
	Endpoint          string `toml:"endpoint"`
	Limit             *int   `toml:"limit"`
	Media             string `toml:"media"`
	SwapInterval      string `toml:"swap_interval"`
	CollectDelay      string `toml:"collect_delay"`
	RequestsPerMinute *int   `toml:"requests_per_minute"`
	LogFile           string `toml:"log_file"`
	UserAgent         string `toml:"user_agent"`
}

// Load reads the config at path, falling back to defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if raw.Limit != nil {
		cfg.Limit = *raw.Limit
	}
	if v := strings.TrimSpace(raw.Media); v != "" {
		media, err := itunes.ParseMedia(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: media: %w", err)
		}
		cfg.Media = media
	}
	if v := strings.TrimSpace(raw.SwapInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: swap_interval: %w", err)
		}
		cfg.SwapInterval = d
	}
	if v := strings.TrimSpace(raw.CollectDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: collect_delay: %w", err)
		}
		cfg.CollectDelay = d
	}
	if raw.RequestsPerMinute != nil {
		cfg.RequestsPerMinute = *raw.RequestsPerMinute
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: log_file: %w", err)
		}
		cfg.LogFile = expanded
	}
	if v := strings.TrimSpace(raw.UserAgent); v != "" {
		cfg.UserAgent = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can drive a working gallery.
func (c Config) Validate() error {
	switch {
	case c.Limit < collect.Quota || c.Limit > maxLimit:
		return fmt.Errorf("invalid config: limit %d must be between %d and %d", c.Limit, collect.Quota, maxLimit)
	case !c.Media.Valid():
		return fmt.Errorf("invalid config: unknown media %q", c.Media)
	case c.SwapInterval <= 0:
		return fmt.Errorf("invalid config: swap_interval must be positive")
	case c.CollectDelay < 0:
		return fmt.Errorf("invalid config: collect_delay must not be negative")
	case c.RequestsPerMinute < 0:
		return fmt.Errorf("invalid config: requests_per_minute must not be negative")
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
