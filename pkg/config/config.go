package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Library
	LibraryDirs  []string          `yaml:"library_dirs"`
	InlineAssets map[string]string `yaml:"inline_assets"`
	Debug        bool              `yaml:"debug"`

	// Cache
	CacheBackend  string `yaml:"cache_backend"`
	CacheTTLHours int    `yaml:"cache_ttl_hours"`

	// Performance
	MaxWorkers      int `yaml:"max_workers"`
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Server
	ListenAddr string `yaml:"listen_addr"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		LibraryDirs:     []string{},
		InlineAssets:    make(map[string]string),
		Debug:           false,
		CacheBackend:    "file",
		CacheTTLHours:   12,
		MaxWorkers:      4,
		WatchDebounceMS: 500,
		LogLevel:        "info",
		ListenAddr:      ":8080",
		ColorTheme:      "auto",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.LibraryDirs == nil {
		c.LibraryDirs = []string{}
	}
	if c.InlineAssets == nil {
		c.InlineAssets = make(map[string]string)
	}
	if c.CacheTTLHours <= 0 {
		c.CacheTTLHours = defaults.CacheTTLHours
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = defaults.MaxWorkers
	}
	if c.WatchDebounceMS <= 0 {
		c.WatchDebounceMS = defaults.WatchDebounceMS
	}
	if c.ListenAddr == "" {
		c.ListenAddr = defaults.ListenAddr
	}

	c.CacheBackend = strings.ToLower(strings.TrimSpace(c.CacheBackend))
	if !isOneOf(c.CacheBackend, "memory", "file", "sqlite", "none") {
		c.CacheBackend = defaults.CacheBackend
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if !isOneOf(c.LogLevel, "debug", "info", "warn", "error") {
		c.LogLevel = defaults.LogLevel
	}
	if !isOneOf(c.ColorTheme, "auto", "dark", "light", "none") {
		c.ColorTheme = defaults.ColorTheme
	}
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CacheTTL returns the snapshot lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// WatchDebounce returns the delay between a change and the reload
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// ResolveDirs returns LibraryDirs as absolute paths. Relative entries are
// taken relative to base.
func (c *Config) ResolveDirs(base string) []string {
	dirs := make([]string, 0, len(c.LibraryDirs))
	for _, dir := range c.LibraryDirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if strings.HasPrefix(dir, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, dir[2:])
			}
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		dirs = append(dirs, filepath.Clean(dir))
	}
	return dirs
}

func isOneOf(value string, valid ...string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
