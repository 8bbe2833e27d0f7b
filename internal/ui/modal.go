package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// errorModal shows a failed attempt and the link it used.
type errorModal struct {
	message string
	uri     string
}

func newErrorModal(r report) errorModal {
	msg := "unknown error"
	if r.cause != nil {
		msg = r.cause.Error()
	}
	return errorModal{message: msg, uri: r.uri}
}

func (e errorModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil, false
	}
	if key.Matches(keyMsg, keys.Quit) {
		return e, tea.Quit, true
	}
	// Any other key dismisses.
	return e, nil, true
}

func (e errorModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	modalWidth := clamp(width-8, 30, 72)

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Could not get images"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("URI: " + e.uri))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Error: " + e.message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("press any key"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
