package config

import (
	stderrors "errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/odvcencio/marquee/pkg/errors"
	"github.com/odvcencio/marquee/pkg/logging"
	"github.com/odvcencio/marquee/pkg/ui/backend"
)

// Config is the full marquee configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// UIConfig controls the event loop and appearance.
type UIConfig struct {
	// FPS is the idle refresh rate, 0..1000. Zero redraws only on input.
	FPS          int    `yaml:"fps"`
	AutohideMenu bool   `yaml:"autohide_menu"`
	ThemeFile    string `yaml:"theme_file"`
	WatchTheme   bool   `yaml:"watch_theme"`
}

// LogConfig controls the structured log.
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives JSON log lines. Empty discards logs: the terminal owns
	// stdout.
	File string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// DefaultMetricsListen is the default /metrics address.
const DefaultMetricsListen = "127.0.0.1:9464"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			FPS:          0,
			AutohideMenu: true,
		},
		Log: LogConfig{
			Level: string(logging.LevelInfo),
		},
		Metrics: MetricsConfig{
			Listen: DefaultMetricsListen,
		},
	}
}

// Load loads configuration from default locations with proper precedence:
// defaults, then ~/.marquee/config.yaml, then ./.marquee/config.yaml, then
// MARQUEE_* environment variables. Missing files are skipped.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		userConfigPath := filepath.Join(home, ".marquee", "config.yaml")
		if err := loadAndMerge(cfg, userConfigPath); err != nil && !notExist(err) {
			return nil, err
		}
	}

	projectConfigPath := filepath.Join(".", ".marquee", "config.yaml")
	if err := loadAndMerge(cfg, projectConfigPath); err != nil && !notExist(err) {
		return nil, err
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadAndMerge(cfg, path); err != nil && !notExist(err) {
		return nil, err
	}
	return finish(cfg)
}

func notExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.UI.ThemeFile = expandHomeDir(cfg.UI.ThemeFile)
	cfg.Log.File = expandHomeDir(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverridesForTest exposes env override logic for tests without file I/O.
func ApplyEnvOverridesForTest(cfg *Config) error {
	return applyEnvOverrides(cfg)
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("MARQUEE_FPS")); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "MARQUEE_FPS is not an integer").
				WithContext("value", v)
		}
		cfg.UI.FPS = fps
	}
	if val, ok := envBool("MARQUEE_AUTOHIDE_MENU"); ok {
		cfg.UI.AutohideMenu = val
	}
	if v := os.Getenv("MARQUEE_THEME"); v != "" {
		cfg.UI.ThemeFile = v
	}
	if val, ok := envBool("MARQUEE_WATCH_THEME"); ok {
		cfg.UI.WatchTheme = val
	}
	if v := os.Getenv("MARQUEE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MARQUEE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if val, ok := envBool("MARQUEE_METRICS"); ok {
		cfg.Metrics.Enabled = val
	}
	if v := os.Getenv("MARQUEE_METRICS_LISTEN"); v != "" {
		cfg.Metrics.Listen = v
		cfg.Metrics.Enabled = true
	}
	return nil
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func isLoopbackBindAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return false
	}
	switch strings.ToLower(host) {
	case "localhost":
		return true
	case "0.0.0.0", "::":
		return false
	default:
		ip := net.ParseIP(host)
		if ip == nil {
			return false
		}
		return ip.IsLoopback()
	}
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if err := backend.ValidateRefreshRate(c.UI.FPS); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid log level").
			WithContext("level", c.Log.Level)
	}
	if c.UI.WatchTheme && strings.TrimSpace(c.UI.ThemeFile) == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "ui.watch_theme requires ui.theme_file")
	}
	if c.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(c.Metrics.Listen); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid metrics listen address").
				WithContext("listen", c.Metrics.Listen)
		}
	}
	return nil
}

// ValidationWarnings returns non-fatal configuration concerns.
func (c *Config) ValidationWarnings() []string {
	var warnings []string
	if c.Metrics.Enabled && !isLoopbackBindAddress(c.Metrics.Listen) {
		warnings = append(warnings, "metrics.listen is not a loopback address; /metrics is exposed to the network")
	}
	if c.UI.FPS > 120 {
		warnings = append(warnings, "ui.fps above 120 redraws faster than most terminals can show")
	}
	return warnings
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
