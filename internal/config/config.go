// Package config loads environment configuration for the layout editor.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	defaultListenAddr     = "0.0.0.0:8788"
	defaultDataDir        = "./data"
	defaultSettingsFile   = "display.yaml"
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
	defaultHitTest        = false
	defaultLogLevel       = zerolog.InfoLevel
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string
	DataDir        string
	SettingsPath   string
	StringsPath    string
	ViewportWidth  int
	ViewportHeight int
	// MonitorIndex selects the display sized into the viewport; 0 means primary.
	MonitorIndex int
	// FallbackWidth/Height are used when no viewport is configured and no monitor is found.
	FallbackWidth  int
	FallbackHeight int
	HitTest        bool
	LogLevel       zerolog.Level
}

// ViewportConfigured reports whether both viewport dimensions were set explicitly.
func (c Config) ViewportConfigured() bool {
	return c.ViewportWidth > 0 && c.ViewportHeight > 0
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     defaultListenAddr,
		DataDir:        defaultDataDir,
		FallbackWidth:  defaultViewportWidth,
		FallbackHeight: defaultViewportHeight,
		HitTest:        defaultHitTest,
		LogLevel:       defaultLogLevel,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.SettingsPath = envString("SETTINGS_PATH", filepath.Join(cfg.DataDir, defaultSettingsFile))
	cfg.StringsPath = envString("STRINGS_PATH", "")
	cfg.HitTest = envBool("HIT_TEST", cfg.HitTest)

	width, err := envInt("VIEWPORT_WIDTH", 0)
	if err != nil {
		return Config{}, err
	}
	height, err := envInt("VIEWPORT_HEIGHT", 0)
	if err != nil {
		return Config{}, err
	}
	if width < 0 || height < 0 {
		return Config{}, fmt.Errorf("VIEWPORT_WIDTH and VIEWPORT_HEIGHT must be >= 0")
	}
	if (width == 0) != (height == 0) {
		return Config{}, errors.New("VIEWPORT_WIDTH and VIEWPORT_HEIGHT must be set together")
	}
	cfg.ViewportWidth = width
	cfg.ViewportHeight = height

	index, err := envInt("MONITOR_INDEX", 0)
	if err != nil {
		return Config{}, err
	}
	if index < 0 {
		return Config{}, fmt.Errorf("MONITOR_INDEX must be >= 0")
	}
	cfg.MonitorIndex = index

	level, err := envLevel("LOG_LEVEL", cfg.LogLevel)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// envLevel parses a zerolog level name.
func envLevel(key string, def zerolog.Level) (zerolog.Level, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
