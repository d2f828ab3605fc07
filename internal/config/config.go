// Package config loads the YAML configuration for go-lipsync commands.
package config

import (
	"github.com/teslashibe/go-lipsync/pkg/audioio"
	"github.com/teslashibe/go-lipsync/pkg/vowel"
)

// Environment variables that override file values.
const (
	EnvLogLevel   = "LIPSYNC_LOG_LEVEL"
	EnvSampleRate = "LIPSYNC_SAMPLE_RATE"
)

// LogLevel is a logging verbosity name.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a known level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the top-level configuration file.
type Config struct {
	Log       LogConfig      `yaml:"log"`
	Estimator vowel.Config   `yaml:"estimator"`
	Input     audioio.Config `yaml:"input"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level LogLevel `yaml:"level"`

	// Format is "text" or "json". Empty follows LOG_FORMAT / GO_ENV.
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: LogInfo},
		Estimator: vowel.DefaultConfig(),
		Input:     audioio.DefaultConfig(),
	}
}

// JSONLogs reports whether the configured format is JSON. ok is false
// when the file leaves the choice to the environment.
func (c *Config) JSONLogs() (json bool, ok bool) {
	switch c.Log.Format {
	case "json":
		return true, true
	case "text":
		return false, true
	}
	return false, false
}

// SampleRate returns the rate the estimator runs at for a source
// recorded at sourceRate. Input is resampled when the two differ.
func (c *Config) SampleRate(sourceRate int) int {
	if c.Input.SampleRate > 0 {
		return c.Input.SampleRate
	}
	return sourceRate
}
