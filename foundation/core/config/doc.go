// Package config provides configuration loading for the minilang tool chain.
//
// Package: config
// Title: minilang Configuration
// Description: Loads TOML or YAML configuration files into a key/value tree
//              addressed with dot notation ("lexer.identifier_width").
//              Environment variables override file values when an env prefix
//              is set: with prefix MINILANG the key compile.strict is read from
//              MINILANG_COMPILE_STRICT. Discover searches a list of directories
//              for the first matching file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Dropped polling watch and rule validation, optional discovery
//
// Usage:
//
//	cfg, err := config.Discover(config.DiscoveryOptions{
//		Paths:     []string{".", "./config"},
//		Filenames: []string{"minilang"},
//		EnvPrefix: "MINILANG",
//	})
//	width := cfg.GetInt("lexer.identifier_width", 5)
package config
