package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/alexanderramin/floatsync/internal/sheet"
	"gopkg.in/yaml.v3"
)

// Config is the explicit configuration for one floatsync invocation.
type Config struct {
	Token            string `yaml:"token"`
	SheetID          string `yaml:"sheet_id"`
	BaseURL          string `yaml:"base_url"`
	TimeoutMs        int    `yaml:"timeout_ms"`
	MaxRetries       int    `yaml:"max_retries"`
	DBPath           string `yaml:"db_path"`
	FloatColumnTitle string `yaml:"float_column_title"`
	LogLevel         string `yaml:"log_level"`
	LogCalls         bool   `yaml:"log_calls"`
}

// DefaultConfig returns a Config with defaults for everything but the
// credentials and sheet id.
func DefaultConfig() Config {
	return Config{
		BaseURL:          sheet.DefaultBaseURL,
		TimeoutMs:        30000,
		MaxRetries:       1,
		DBPath:           defaultDBPath(),
		FloatColumnTitle: domain.DefaultFloatTitle,
		LogLevel:         "info",
	}
}

// DefaultPath is the config file read when no path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floatsync", "config.yaml")
}

// Load reads the YAML file at path (a missing file is not an error), then
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.TimeoutMs <= 0 {
		return Config{}, ErrInvalidTimeout
	}
	if cfg.MaxRetries < 0 {
		return Config{}, ErrInvalidMaxRetries
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	// TOKEN and SHEET_ID are the names used by existing .env files.
	cfg.Token = domain.CoalesceStr(os.Getenv("FLOATSYNC_TOKEN"), os.Getenv("TOKEN"), cfg.Token)
	cfg.SheetID = domain.CoalesceStr(os.Getenv("FLOATSYNC_SHEET_ID"), os.Getenv("SHEET_ID"), cfg.SheetID)

	if v := os.Getenv("FLOATSYNC_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FLOATSYNC_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FLOATSYNC_FLOAT_COLUMN"); v != "" {
		cfg.FloatColumnTitle = v
	}
	if v := os.Getenv("FLOATSYNC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FLOATSYNC_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FLOATSYNC_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FLOATSYNC_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
}

// ValidateForRun checks the settings needed to talk to the sheet api.
func (c Config) ValidateForRun() error {
	if c.Token == "" {
		return ErrTokenMissing
	}
	if c.SheetID == "" {
		return ErrSheetIDMissing
	}
	return nil
}

// Sheet returns the client settings derived from c.
func (c Config) Sheet() sheet.Config {
	return sheet.Config{
		BaseURL:    c.BaseURL,
		Token:      c.Token,
		TimeoutMs:  c.TimeoutMs,
		MaxRetries: c.MaxRetries,
	}
}

// SlogLevel parses LogLevel, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".floatsync", "floatsync.db")
	}
	return filepath.Join(home, ".floatsync", "floatsync.db")
}
