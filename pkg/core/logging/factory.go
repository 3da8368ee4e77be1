// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     logging
// Description: Factory functions for the operational logger of the mlc command
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (console, text, json, logfmt)
	Format string

	// Color enables level colors in console format
	Color bool

	// Output defaults to stderr so that log lines never mix with the
	// compiler sections on stdout
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  mdwlog.DefaultLevel().String(),
		Format: mdwlog.FormatConsole.String(),
		Color:  true,
	}
}

// NewLogger creates a Foundation logger. Invalid level or format names fall
// back to the defaults.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, _ := mdwlog.ParseFormat(cfg.Format)

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})

	if format == mdwlog.FormatConsole && !cfg.Color {
		plain := mdwlog.NewConsoleFormatter()
		plain.DisableColors = true
		logger = logger.WithFormatter(plain)
	}
	return logger
}

// FromSettings creates the logger described by the log section of s
func FromSettings(name string, s *config.Settings) *mdwlog.Logger {
	cfg := DefaultLoggerConfig(name)
	if s != nil {
		cfg.Level = s.Log.Level
		cfg.Format = s.Log.Format
		cfg.Color = s.Output.Color
	}
	return NewLogger(cfg)
}

// NewSimpleLogger creates a logger with default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to mdwlog.Level
func parseLevel(level string) mdwlog.Level {
	if l, err := mdwlog.ParseLevel(level); err == nil {
		return l
	}
	return mdwlog.DefaultLevel()
}
