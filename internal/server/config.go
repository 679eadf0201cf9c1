package server

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvOutputDir = "IMAGE_FILTER_OUTPUT_DIR"
	EnvOverwrite = "IMAGE_FILTER_OVERWRITE"
	EnvLogLevel  = "IMAGE_FILTER_LOG_LEVEL"
)

// DefaultOutputDir is where filtered images are written when no directory
// is configured.
const DefaultOutputDir = "res/images"

// Config controls where the server writes filter output.
type Config struct {
	// OutputDir receives images saved through a tool's "output" argument.
	OutputDir string

	// Overwrite allows replacing existing files in OutputDir. When false a
	// save to an existing name fails instead.
	Overwrite bool

	// Debug enables per-call logging on stderr.
	Debug bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{OutputDir: DefaultOutputDir}
}

// ConfigFromEnv builds a Config from the IMAGE_FILTER_* environment
// variables, falling back to DefaultConfig for anything unset.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.OutputDir = dir
	}
	if v := os.Getenv(EnvOverwrite); v != "" {
		overwrite, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvOverwrite, err)
		}
		cfg.Overwrite = overwrite
	}
	cfg.Debug = os.Getenv(EnvLogLevel) == "debug"
	return cfg, nil
}
