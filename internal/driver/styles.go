// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     driver
// Description: Terminal styles for diagnostics and section headers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package driver

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/minilang/foundation/minilang/diag"
)

// Color palette, shared with the inspector
var (
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#94A3B8") // Slate 400
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
)

// Styles renders diagnostics and headers for one output stream
type Styles struct {
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Position lipgloss.Style
	Header   lipgloss.Style
}

// NewStyles creates styles bound to w. The color profile is detected from
// w, so writers that are not terminals get plain text. With color disabled
// all styles are plain.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		return Styles{
			Warning:  r.NewStyle(),
			Error:    r.NewStyle(),
			Position: r.NewStyle(),
			Header:   r.NewStyle(),
		}
	}
	return Styles{
		Warning:  r.NewStyle().Foreground(ColorWarning).Bold(true),
		Error:    r.NewStyle().Foreground(ColorError).Bold(true),
		Position: r.NewStyle().Foreground(ColorMuted),
		Header:   r.NewStyle().Foreground(ColorPrimary).Bold(true),
	}
}

// Diagnostic renders d in the standard one-line form with the
// "<Phase> <Severity>" tag and the position styled
func (s Styles) Diagnostic(d diag.Diagnostic) string {
	tag := d.Phase.String() + " " + d.Severity.String()
	if d.IsError() {
		tag = s.Error.Render(tag)
	} else {
		tag = s.Warning.Render(tag)
	}
	pos := s.Position.Render(fmtPosition(d))
	return tag + " at " + pos + ": " + d.Message
}
