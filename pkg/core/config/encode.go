// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     config
// Description: Writes effective settings back as TOML or YAML
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
)

// Encode writes the settings in the given format ("toml", "yaml" or "yml").
// The output can be used as a minilang.toml / minilang.yaml file.
func (s *Settings) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", "toml":
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return mdwerror.Wrap(err, "cannot encode settings as TOML").
				WithCode(mdwerror.CodeInternal).
				WithOperation("config.Encode")
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return mdwerror.Wrap(err, "cannot encode settings as YAML").
				WithCode(mdwerror.CodeInternal).
				WithOperation("config.Encode")
		}
		return enc.Close()
	default:
		return mdwerror.New("unknown settings format: " + format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Encode")
	}
}
