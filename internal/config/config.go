package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"exifview/internal/exiftool"

	"github.com/magiconair/properties"
	"github.com/rs/zerolog"
)

const (
	FileName = "exifview.properties"

	DefaultExifTool     = "exiftool"
	DefaultWindowWidth  = 900
	DefaultWindowHeight = 650
)

type Config struct {
	ExifToolPath string
	ExifToolArgs []string
	LogLevel     zerolog.Level
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
}

func Default() Config {
	return Config{
		ExifToolPath: DefaultExifTool,
		ExifToolArgs: append([]string(nil), exiftool.DefaultArgs...),
		LogLevel:     zerolog.InfoLevel,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// DefaultPath returns the per-user properties file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "exifview", FileName)
}

// Load reads the properties file at path, if present, and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			p, err := properties.LoadFile(path, properties.UTF8)
			if err != nil {
				return cfg, fmt.Errorf("load %s: %w", path, err)
			}
			applyProperties(&cfg, p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyProperties(cfg *Config, p *properties.Properties) {
	cfg.ExifToolPath = p.GetString("exiftool.path", cfg.ExifToolPath)
	if args := p.GetString("exiftool.args", ""); args != "" {
		cfg.ExifToolArgs = strings.Fields(args)
	}
	if level, err := zerolog.ParseLevel(p.GetString("log.level", "")); err == nil && level != zerolog.NoLevel {
		cfg.LogLevel = level
	}
	cfg.JSONLogs = p.GetBool("log.json", cfg.JSONLogs)
	cfg.WindowWidth = float32(p.GetFloat64("window.width", float64(cfg.WindowWidth)))
	cfg.WindowHeight = float32(p.GetFloat64("window.height", float64(cfg.WindowHeight)))
}

func applyEnv(cfg *Config) {
	if path := os.Getenv("EXIFVIEW_EXIFTOOL"); path != "" {
		cfg.ExifToolPath = path
	}
	if args := os.Getenv("EXIFVIEW_EXIFTOOL_ARGS"); args != "" {
		cfg.ExifToolArgs = strings.Fields(args)
	}
	cfg.JSONLogs = getEnvBool("EXIFVIEW_JSON_LOGS", cfg.JSONLogs)
	cfg.LogLevel = determineLogLevel(cfg.LogLevel)
}

// getEnvBool reads a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func determineLogLevel(current zerolog.Level) zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return current
	}
}
