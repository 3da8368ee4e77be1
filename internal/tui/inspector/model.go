// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     inspector
// Description: Bubbletea model that shows tokens, tree, diagnostics and
//              symbols of one compilation
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package inspector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
	"github.com/msto63/minilang/foundation/minilang"
	"github.com/msto63/minilang/foundation/minilang/ast"
	mdwstringx "github.com/msto63/minilang/foundation/utils/stringx"
	"github.com/msto63/minilang/pkg/core/version"
)

// maxPathWidth limits the source path shown in the header
const maxPathWidth = 48

// CompileFunc produces a fresh compilation result
type CompileFunc func(ctx context.Context) (*minilang.Result, error)

// Config holds inspector configuration
type Config struct {
	// Path is shown in the header
	Path string

	// Compile is called on start and on every reload
	Compile CompileFunc
}

// Model is the main Bubbletea model of the inspector
type Model struct {
	// State
	width        int
	height       int
	ready        bool
	loading      bool
	showWarnings bool
	tab          Tab
	err          error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	result  *minilang.Result
	path    string
	compile CompileFunc
}

// New creates a new inspector model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner:      sp,
		loading:      true,
		showWarnings: true,
		path:         cfg.Path,
		compile:      cfg.Compile,
	}
}

// Reload returns a message that makes the inspector recompile its source.
// Send it with tea.Program.Send, e.g. from a file watcher.
func Reload() tea.Msg {
	return reloadMsg{}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // title panel + tab bar
		footerHeight := 4 // panel border + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case compiledMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
		}
		m.updateViewportContent()

	case reloadMsg:
		m.loading = true
		cmds = append(cmds, m.load, m.spinner.Tick)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.setTab((m.tab + 1) % tabCount)
		return m, nil

	case tea.KeyShiftTab:
		m.setTab((m.tab + tabCount - 1) % tabCount)
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4":
			m.setTab(Tab(msg.Runes[0] - '1'))
			return m, nil
		case "w":
			m.showWarnings = !m.showWarnings
			m.updateViewportContent()
			return m, nil
		case "r":
			m.loading = true
			return m, tea.Batch(m.load, m.spinner.Tick)
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	m.updateViewportContent()
	m.viewport.GotoTop()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading inspector..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(PanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " compiling"
	case m.err != nil:
		status = ErrorStyle.Render(m.err.Error())
	case m.result != nil && m.result.HasErrors():
		status = ErrorStyle.Render(fmt.Sprintf("%d error(s)", len(m.result.Diagnostics.Errors())))
	case m.result != nil:
		status = OKStyle.Render("ok")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		PathStyle.Render(mdwstringx.Truncate(m.path, maxPathWidth, "...")),
		strings.Repeat(" ", 3),
		status,
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		tabs = append(tabs, RenderTab(fmt.Sprintf("%d %s", t+1, t), t == m.tab))
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render("v" + version.Tool)
	right := ""
	if r := m.result; r != nil {
		right = HelpDescStyle.Render(fmt.Sprintf("%d tokens  %d diagnostics  %s  run %s",
			len(r.Tokens), r.Diagnostics.Len(), r.Duration.Round(time.Microsecond), shortID(r.RunID)))
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if space < 2 {
		space = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", space) + right)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-4/Tab", "View"),
		RenderKeyHint("w", "Warnings"),
		RenderKeyHint("r", "Recompile"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the active tab into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}

// content renders the active tab
func (m Model) content() string {
	if m.err != nil {
		return ErrorStyle.Render(m.err.Error())
	}
	if m.result == nil {
		return MutedStyle.Render("No compilation yet")
	}

	switch m.tab {
	case TabTokens:
		return renderTokens(m.result)
	case TabAST:
		return renderAST(m.result)
	case TabDiagnostics:
		return renderDiagnostics(m.result, m.showWarnings)
	case TabSymbols:
		return renderSymbols(m.result)
	}
	return ""
}

func renderTokens(r *minilang.Result) string {
	var b strings.Builder
	for _, tok := range r.Tokens {
		pos := PositionStyle.Render(fmt.Sprintf("%4d:%-3d", tok.Line, tok.Column))
		kind := RenderTokenKind(tok.Type, 16)
		fmt.Fprintf(&b, "%s %s %q\n", pos, kind, tok.Value)
	}
	return b.String()
}

func renderAST(r *minilang.Result) string {
	if r.Program == nil {
		return MutedStyle.Render("No syntax tree: the program did not parse")
	}
	return ast.Render(r.Program)
}

func renderDiagnostics(r *minilang.Result, showWarnings bool) string {
	var b strings.Builder
	shown := 0
	for _, d := range r.Diagnostics.Diagnostics() {
		if !d.IsError() && !showWarnings {
			continue
		}
		shown++
		pos := PositionStyle.Render(fmt.Sprintf("%d:%d", d.Line, d.Column))
		fmt.Fprintf(&b, "%s %-8s %s %s\n", RenderSeverityBadge(d.IsError()), d.Phase, pos, d.Message)
	}
	if shown == 0 {
		return OKStyle.Render("No diagnostics")
	}
	return b.String()
}

func renderSymbols(r *minilang.Result) string {
	if r.Symbols == nil {
		return MutedStyle.Render("No symbol table: the program did not parse")
	}

	uses := make(map[string]int)
	for _, name := range ast.Uses(r.Program) {
		uses[name]++
	}

	var b strings.Builder
	for _, name := range r.Symbols.Names() {
		fmt.Fprintf(&b, "%s %s\n", mdwstringx.PadRight(name, 8, ' '), MutedStyle.Render(fmt.Sprintf("%d use(s)", uses[name])))
	}
	if r.Symbols.Len() == 0 {
		return MutedStyle.Render("No variables declared")
	}
	return b.String()
}

// load runs the compile function
func (m Model) load() tea.Msg {
	if m.compile == nil {
		return compiledMsg{err: mdwerror.New("no source configured").WithCode(mdwerror.CodeInvalidInput)}
	}
	res, err := m.compile(context.Background())
	return compiledMsg{result: res, err: err}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the inspector TUI and blocks until the user quits
func Run(cfg Config, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(cfg), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	_, err := p.Run()
	return err
}

// NewProgram creates the inspector program without starting it, so that the
// caller can Send reload messages from another goroutine.
func NewProgram(cfg Config, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(New(cfg), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}
