// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     version
// Description: Central version information for the mlc command
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Tool is the version of the mlc command
	Tool = "0.1.0"

	// Language is the version of the accepted minilang grammar
	Language = "1.0.0"
)

// Build metadata, set with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Tool      string
	Language  string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Tool:      Tool,
		Language:  Language,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("mlc v%s (minilang %s, %s)", i.Tool, i.Language, i.GitCommit)
}
