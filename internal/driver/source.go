// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     driver
// Description: Reading source files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package driver

import (
	"os"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
)

// LoadSource reads the whole source file. Failure is fatal for every command
// and carries the SOURCE_UNREADABLE code.
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", mdwerror.Wrap(err, "Could not open file: "+path).
			WithCode(mdwerror.CodeSourceUnreadable).
			WithOperation("driver.LoadSource").
			WithDetail("path", path)
	}
	return string(data), nil
}
