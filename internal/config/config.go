package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/sona/internal/toast"
)

const appName = "sona"

type Config struct {
	Toast ToastConfig `koanf:"toast"`

	// Messages sent by the four demo triggers
	Demo DemoConfig `koanf:"demo"`

	Log LogConfig `koanf:"log"`
}

// ToastConfig controls the toast widget.
type ToastConfig struct {
	IntervalMS int    `koanf:"interval_ms"` // time between expiry sweeps (default: 3000)
	Corner     string `koanf:"corner"`      // "top-right", "top-left", "bottom-right", "bottom-left"
	Width      int    `koanf:"width"`       // box width in columns (default: 40)
	MaxLines   int    `koanf:"max_lines"`   // message lines per box (default: 3)
	Desktop    bool   `koanf:"desktop"`     // also send each toast as a desktop notification
}

// DemoConfig holds the message of each demo trigger.
type DemoConfig struct {
	Error   string `koanf:"error"`
	Warning string `koanf:"warning"`
	Info    string `koanf:"info"`
	Success string `koanf:"success"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error", "off" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/sona/sona.log
}

// Load reads the config files in priority order. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files; later files override earlier ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Toast.Corner = strings.ToLower(strings.TrimSpace(cfg.Toast.Corner))
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/sona/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetToastConfig returns the toast settings with defaults applied.
func (c *Config) GetToastConfig() ToastConfig {
	cfg := c.Toast

	if cfg.IntervalMS <= 0 {
		cfg.IntervalMS = int(toast.DefaultInterval / time.Millisecond)
	}
	if cfg.Corner == "" {
		cfg.Corner = "top-right"
	}
	if cfg.Width <= 0 {
		cfg.Width = 40
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = 3
	}

	return cfg
}

// Interval returns the expiry interval as a duration.
func (t ToastConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// DemoMessage returns the demo trigger message for kind.
func (c *Config) DemoMessage(kind toast.Kind) string {
	var msg, def string
	switch kind {
	case toast.KindError:
		msg, def = c.Demo.Error, "Something went wrong!"
	case toast.KindWarning:
		msg, def = c.Demo.Warning, "This is a warning message!"
	case toast.KindInfo:
		msg, def = c.Demo.Info, "This is a information message"
	case toast.KindSuccess:
		msg, def = c.Demo.Success, "Action is successfully"
	}
	if msg == "" {
		return def
	}
	return msg
}
