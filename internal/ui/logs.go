package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artgrid/internal/logtail"
)

// logState holds the log overlay.
type logState struct {
	visible     bool
	attemptOnly bool
	lines       []string
	err         error
	viewport    viewport.Model
}

type logLinesMsg struct {
	lines []string
	err   error
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogLineLimit)
		return logLinesMsg{lines: lines, err: err}
	}
}

// initLogViewport sizes the log viewport to the window.
func (m *Model) initLogViewport() {
	w, h := m.logViewportSize()
	if m.logs.viewport.Width == 0 {
		m.logs.viewport = viewport.New(w, h)
		return
	}
	m.logs.viewport.Width = w
	m.logs.viewport.Height = h
}

func (m Model) logViewportSize() (int, int) {
	return maxInt(m.width-6, 10), maxInt(m.height-8, 3)
}

// openLogs shows the overlay and reads the file.
func (m Model) openLogs() (tea.Model, tea.Cmd) {
	m.logs.visible = true
	m.initLogViewport()
	if m.logPath == "" {
		m.logs.err = fmt.Errorf("no log file configured")
		m.updateLogViewport()
		return m, nil
	}
	return m, readLogsCmd(m.logPath)
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logs.lines = msg.lines
	m.logs.err = msg.err
	m.updateLogViewport()
	m.logs.viewport.GotoBottom()
}

// updateLogViewport re-renders the visible lines into the viewport.
func (m *Model) updateLogViewport() {
	if m.logs.err != nil {
		m.logs.viewport.SetContent(m.theme.Styles().DangerText.Render(m.logs.err.Error()))
		return
	}
	lines := m.logs.lines
	if m.logs.attemptOnly {
		lines = logtail.ForAttempt(lines, m.lastAttempt)
	}
	if len(lines) == 0 {
		m.logs.viewport.SetContent(m.theme.Styles().FaintText.Render("(no log lines)"))
		return
	}
	styles := m.theme.LogStyles()
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = logtail.Highlight(line, styles)
	}
	m.logs.viewport.SetContent(strings.Join(rendered, "\n"))
}

// handleLogsKey processes keyboard input while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape, m.keys.Logs):
		m.logs.visible = false
		return m, nil
	case key.Matches(msg, m.keys.AttemptOnly):
		m.logs.attemptOnly = !m.logs.attemptOnly
		m.updateLogViewport()
		m.logs.viewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.logPath == "" {
			return m, nil
		}
		return m, readLogsCmd(m.logPath)
	}

	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	title := styles.Text.Bold(true).Render("Logs")
	scope := "all searches"
	if m.logs.attemptOnly {
		scope = "last search"
	}
	title += styles.FaintText.Render("  " + scope + "  " + truncateMiddle(m.logPath, 48))

	hint := styles.AccentText.Render("a") + styles.FaintText.Render(":scope  ") +
		styles.AccentText.Render("r") + styles.FaintText.Render(":reload  ") +
		styles.AccentText.Render("esc") + styles.FaintText.Render(":close")

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.logs.viewport.View(), "", hint)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		frame.Render(body),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
