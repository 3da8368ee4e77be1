// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     config
// Description: Typed settings of the mlc command on top of the Foundation
//              configuration layer (TOML/YAML files, MINILANG_* overrides)
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"time"

	mdwconfig "github.com/msto63/minilang/foundation/core/config"
	mdwerror "github.com/msto63/minilang/foundation/core/error"
	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang/parser"
)

// EnvPrefix is the prefix of environment overrides, e.g. MINILANG_COMPILE_STRICT
const EnvPrefix = "MINILANG"

// EnvConfigFile names an explicit configuration file
const EnvConfigFile = "MINILANG_CONFIG"

// Settings holds the complete mlc configuration
type Settings struct {
	Lexer   LexerSettings   `toml:"lexer" yaml:"lexer"`
	Output  OutputSettings  `toml:"output" yaml:"output"`
	Compile CompileSettings `toml:"compile" yaml:"compile"`
	Log     LogSettings     `toml:"log" yaml:"log"`
	Watch   WatchSettings   `toml:"watch" yaml:"watch"`

	// File is the configuration file the settings were read from, empty when
	// only defaults and environment overrides apply
	File string `toml:"-" yaml:"-"`
}

// LexerSettings holds tokenizer settings
type LexerSettings struct {
	IdentifierWidth int `toml:"identifier_width" yaml:"identifier_width"`
}

// OutputSettings selects the sections printed by the driver
type OutputSettings struct {
	Tokens bool `toml:"tokens" yaml:"tokens"`
	AST    bool `toml:"ast" yaml:"ast"`
	Color  bool `toml:"color" yaml:"color"`
}

// CompileSettings holds pipeline settings
type CompileSettings struct {
	Strict     bool `toml:"strict" yaml:"strict"`
	WarnUnused bool `toml:"warn_unused" yaml:"warn_unused"`
}

// LogSettings holds operational logging settings
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// WatchSettings holds settings of the watch command
type WatchSettings struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for config parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the settings used when nothing is configured
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Load reads settings from path. An empty path falls back to
// MINILANG_CONFIG and then to discovery of minilang.{toml,yaml,yml} in the
// working directory and ./config. Finding no file is not an error.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	var (
		cfg *mdwconfig.Config
		err error
	)
	if path != "" {
		cfg, err = mdwconfig.LoadWithOptions(os.ExpandEnv(path), mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
		})
	} else {
		cfg, err = mdwconfig.Discover(mdwconfig.DefaultDiscoveryOptions())
	}
	if err != nil {
		return nil, err
	}

	return FromConfig(cfg)
}

// FromConfig builds validated settings from a loaded configuration
func FromConfig(cfg *mdwconfig.Config) (*Settings, error) {
	d := Default()
	s := &Settings{
		Lexer: LexerSettings{
			IdentifierWidth: cfg.GetInt("lexer.identifier_width", d.Lexer.IdentifierWidth),
		},
		Output: OutputSettings{
			Tokens: cfg.GetBool("output.tokens", d.Output.Tokens),
			AST:    cfg.GetBool("output.ast", d.Output.AST),
			Color:  cfg.GetBool("output.color", d.Output.Color),
		},
		Compile: CompileSettings{
			Strict:     cfg.GetBool("compile.strict", d.Compile.Strict),
			WarnUnused: cfg.GetBool("compile.warn_unused", d.Compile.WarnUnused),
		},
		Log: LogSettings{
			Level:  cfg.GetString("log.level", d.Log.Level),
			Format: cfg.GetString("log.format", d.Log.Format),
		},
		File: cfg.FilePath(),
	}

	if raw := cfg.GetString("watch.debounce"); raw != "" {
		if err := s.Watch.Debounce.UnmarshalText([]byte(raw)); err != nil {
			return nil, invalid("watch.debounce", raw, err)
		}
	} else {
		s.Watch.Debounce = d.Watch.Debounce
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// applyDefaults sets default values for missing configuration
func (s *Settings) applyDefaults() {
	if s.Lexer.IdentifierWidth == 0 {
		s.Lexer.IdentifierWidth = parser.DefaultIdentifierWidth
	}
	s.Output.Tokens = true
	s.Output.AST = true
	s.Output.Color = true
	if s.Log.Level == "" {
		s.Log.Level = mdwlog.DefaultLevel().String()
	}
	if s.Log.Format == "" {
		s.Log.Format = mdwlog.FormatConsole.String()
	}
	if s.Watch.Debounce.Duration == 0 {
		s.Watch.Debounce.Duration = 100 * time.Millisecond
	}
}

// Validate checks value ranges and names
func (s *Settings) Validate() error {
	if s.Lexer.IdentifierWidth < 1 {
		return invalid("lexer.identifier_width", s.Lexer.IdentifierWidth, nil)
	}
	if _, err := mdwlog.ParseLevel(s.Log.Level); err != nil {
		return invalid("log.level", s.Log.Level, err)
	}
	if _, err := mdwlog.ParseFormat(s.Log.Format); err != nil {
		return invalid("log.format", s.Log.Format, err)
	}
	if s.Watch.Debounce.Duration < 0 {
		return invalid("watch.debounce", s.Watch.Debounce.Duration, nil)
	}
	return nil
}

func invalid(key string, value interface{}, cause error) error {
	msg := fmt.Sprintf("invalid value for %s: %v", key, value)
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, msg)
	} else {
		err = mdwerror.New(msg)
	}
	return err.WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}
