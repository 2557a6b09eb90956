// Package config loads pathlab runtime settings from the environment, with an
// optional .env file layered underneath.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every value Load rejects.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Logging LoggingConfig
	Solver  SolverConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `validate:"oneof=debug info warn warning error"`
	Format        string `validate:"oneof=text json"` // text|json
	IncludeCaller bool
}

// SolverConfig holds defaults for the solve commands. Flags override them.
type SolverConfig struct {
	// Graph is a YAML/JSON document path; empty selects the built-in sample.
	Graph   string
	Source  string
	Mode    string        `validate:"oneof=min max shortest longest"`
	Timeout time.Duration `validate:"gte=0"`
}

const (
	envPrefix = "PATHLAB_"

	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
	defaultSource        = "x1"
	defaultMode          = "min"
	defaultTimeout       = 30 * time.Second
)

var validate = validator.New()

// Load reads configuration from PATHLAB_* environment variables, applying
// defaults.
//
// With no arguments a ./.env file is loaded if it exists. Explicit envFiles
// must exist. Variables already present in the environment always win over
// file values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return Config{}, fmt.Errorf("config: load env files: %w", err)
	}

	cfg := Config{
		Logging: LoggingConfig{
			Level:         strings.ToLower(valueOrDefault("LOG_LEVEL", defaultLoggingLevel)),
			Format:        strings.ToLower(valueOrDefault("LOG_FORMAT", defaultLoggingFormat)),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
		Solver: SolverConfig{
			Graph:   os.Getenv(envPrefix + "GRAPH"),
			Source:  valueOrDefault("SOURCE", defaultSource),
			Mode:    strings.ToLower(valueOrDefault("MODE", defaultMode)),
			Timeout: defaultTimeout,
		},
	}

	if v := os.Getenv(envPrefix + "TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %sTIMEOUT: %v", ErrInvalidConfig, envPrefix, err)
		}
		cfg.Solver.Timeout = d
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envPrefix + key)); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(envPrefix + key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
