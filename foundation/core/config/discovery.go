// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches directories for the first configuration file that
//              matches a list of base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: Optional discovery returns an env-only Config

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Fail when no file is found
	Defaults   map[string]interface{}
}

// DefaultDiscoveryOptions returns the search options used by the mlc command
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./config"},
		Filenames:  []string{"minilang"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "MINILANG",
	}
}

// Discover finds and loads the first matching configuration file. When no file
// exists and Required is false, an empty Config carrying the env prefix and
// defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	if path, ok := findFirst(options); ok {
		cfg, err := LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if err != nil {
			return nil, mdwerror.Wrap(err, "found config file but failed to load it").
				WithOperation("config.Discover").
				WithDetail("path", path)
		}
		return cfg, nil
	}

	if options.Required {
		candidates := ListPossibleConfigFiles(options)
		return nil, mdwerror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("candidates", candidates)
	}

	cfg := Empty(options.EnvPrefix)
	if options.Defaults != nil {
		cfg.data = mergeDefaults(cfg.data, options.Defaults)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing candidate path without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if path, ok := findFirst(options); ok {
		return path, nil
	}
	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

func findFirst(options DiscoveryOptions) (string, bool) {
	for _, path := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
