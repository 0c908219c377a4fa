package datalog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

// Environment variables consulted by New when the matching Config field is empty.
const (
	EnvRootDirectory = "DATALOG_ROOT"
	EnvBaseName      = "DATALOG_BASE_NAME"
	EnvTimeStamp     = "DATALOG_TIMESTAMP"
)

// Config defines options for New.
// Empty fields fall back to the DATALOG_* environment variables.
type Config struct {
	// RootDirectory is where file sessions are created; it is created if missing.
	// Default: "" (current working directory)
	RootDirectory string `yaml:"root_directory"`
	// BaseName prefixes every session file name, followed by "-".
	// Default: "" (no prefix)
	BaseName string `yaml:"base_name"`
	// TimeStamp appends the factory creation time to every session file name.
	// Default: false
	TimeStamp bool `yaml:"time_stamp"`
	// Quiet disables diagnostic output on stderr.
	// Default: false
	Quiet bool `yaml:"quiet"`
	// Debug enables debug-level diagnostics (session open/close).
	// Default: false
	Debug bool `yaml:"debug"`
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Dependency injection points for testing outputs and the clock.
var (
	outTerminal   io.Writer = os.Stderr
	outDiagnostic io.Writer = os.Stderr
	now                     = time.Now
)

func resolveConfig(cfg Config) Config {
	if cfg.RootDirectory == "" {
		cfg.RootDirectory = os.Getenv(EnvRootDirectory)
	}
	if cfg.BaseName == "" {
		cfg.BaseName = os.Getenv(EnvBaseName)
	}
	if !cfg.TimeStamp {
		cfg.TimeStamp = parseBool(os.Getenv(EnvTimeStamp))
	}
	return cfg
}

// parseBool accepts strconv booleans plus "yes"/"on"; anything else is false.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "yes", "on":
		return true
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func newDiagnostics(cfg Config) zerolog.Logger {
	if cfg.Quiet {
		return zerolog.Nop()
	}
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        outDiagnostic,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).
		Level(level).
		With().
		Timestamp().
		Str("component", "datalog").
		Logger()
}
