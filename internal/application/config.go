package application

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustickingdom/talentcalc/infrastructure/scoring"
	"github.com/rustickingdom/talentcalc/internal/ports"
)

// Environment variables read by LoadConfig. They override values from the
// config file.
const (
	EnvLocale   = "TALENTCALC_LOCALE"
	EnvTheme    = "TALENTCALC_THEME"
	EnvLogLevel = "TALENTCALC_LOG_LEVEL"
	EnvColor    = "TALENTCALC_COLOR"
	EnvMode     = "TALENTCALC_MODE"
)

// Config is the application configuration: display preferences, logging,
// and the scoring rules.
type Config struct {
	// Locale is a BCP 47 tag. Unsupported languages fall back to English
	// at render time.
	Locale string `yaml:"locale" validate:"omitempty,bcp47_language_tag"`

	// Theme is light or dark.
	Theme string `yaml:"theme" validate:"omitempty,oneof=light dark"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Color enables ANSI styling in the text report.
	Color bool `yaml:"color"`

	// Rules are validated by scoring.Config.Validate, which also checks
	// that the two shares sum to 1.
	Rules scoring.Config `yaml:"rules" validate:"-"`
}

// DefaultConfig returns English, light theme, info logging and the standard
// contest rules.
func DefaultConfig() Config {
	return Config{
		Locale:   "en",
		Theme:    "light",
		LogLevel: "info",
		Rules:    scoring.DefaultConfig(),
	}
}

var configValidator = validator.New()

// Validate checks the configuration and its rules.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return NewConfigValueError(strings.ToLower(fe.Field()), fmt.Sprint(fe.Value()))
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := c.Rules.Validate(); err != nil {
		return ports.NewConfigError("rules", err)
	}
	return nil
}

// Normalize trims the string options and lowercases those matched
// case-insensitively. Call it before Validate after changing options.
func (c *Config) Normalize() {
	c.Locale = strings.TrimSpace(c.Locale)
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Rules.Mode = scoring.Mode(strings.ToLower(strings.TrimSpace(string(c.Rules.Mode))))
	c.Rules.EmptyPanel = scoring.EmptyPanelPolicy(strings.ToLower(strings.TrimSpace(string(c.Rules.EmptyPanel))))
}

// NewConfigValueError reports a configuration value that could not be used.
func NewConfigValueError(key, value string) error {
	return ports.NewConfigError(key, fmt.Errorf("%w: %q", ports.ErrInvalidConfigValue, value))
}

// SlogLevel returns the slog level for LogLevel. Unknown levels map to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc over the process environment, falling back
// to the given .env files. Files that do not exist are skipped. The process
// environment always wins.
func EnvLookup(dotenvPaths ...string) (LookupFunc, error) {
	dotenv := map[string]string{}
	for _, p := range dotenvPaths {
		values, err := godotenv.Read(filepath.Clean(p))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		for k, v := range values {
			if _, seen := dotenv[k]; !seen {
				dotenv[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// LoadConfig builds a Config from the defaults, then the YAML file at path
// (skipped when path is empty), then the environment. A nil lookup skips
// the environment.
func LoadConfig(path string, lookup LookupFunc) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, ports.NewConfigError(path, ports.ErrConfigNotFound)
		}
		if err != nil {
			return Config{}, fmt.Errorf("failed to read file: %w", err)
		}
		if err := decodeConfig(bytes.NewReader(data), &cfg); err != nil {
			return Config{}, err
		}
	}

	if lookup != nil {
		if err := cfg.applyEnv(lookup); err != nil {
			return Config{}, err
		}
	}

	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvLocale); ok && v != "" {
		c.Locale = v
	}
	if v, ok := lookup(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return NewConfigValueError(EnvColor, v)
		}
		c.Color = color
	}
	if v, ok := lookup(EnvMode); ok && v != "" {
		c.Rules.Mode = scoring.Mode(v)
	}
	return nil
}
