// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     inspector
// Description: Styles for the inspector TUI
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package inspector

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/minilang/foundation/minilang/parser"
	mdwstringx "github.com/msto63/minilang/foundation/utils/stringx"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Tab styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Padding(0, 1)
)

// Content styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	TokenKindStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	KeywordStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	OperatorStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	DelimiterStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Status and help styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "mlc inspector"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderSeverityBadge renders a diagnostic severity badge
func RenderSeverityBadge(isError bool) string {
	if isError {
		return ErrorStyle.Render("[ERROR]")
	}
	return WarningStyle.Render("[WARN] ")
}

// Token classes used to pick a style
const (
	classKeyword   = "keyword"
	classOperator  = "operator"
	classDelimiter = "delimiter"
	classError     = "error"
	classOther     = "other"
)

func tokenClass(tt parser.TokenType) string {
	switch {
	case tt.IsKeyword():
		return classKeyword
	case tt.IsOperator():
		return classOperator
	case tt.IsDelimiter():
		return classDelimiter
	case tt == parser.TokenError:
		return classError
	default:
		return classOther
	}
}

// RenderTokenKind renders a token type name colored by its class
func RenderTokenKind(tt parser.TokenType, width int) string {
	label := mdwstringx.PadRight(tt.String(), width, ' ')
	switch tokenClass(tt) {
	case classKeyword:
		return KeywordStyle.Render(label)
	case classOperator:
		return OperatorStyle.Render(label)
	case classDelimiter:
		return DelimiterStyle.Render(label)
	case classError:
		return ErrorStyle.Render(label)
	default:
		return TokenKindStyle.Render(label)
	}
}

// RenderTab renders one entry of the tab bar
func RenderTab(label string, active bool) string {
	if active {
		return TabActiveStyle.Render(label)
	}
	return TabInactiveStyle.Render(label)
}
