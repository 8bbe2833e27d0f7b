package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artgrid/internal/gallery"
)

const creditLine = "Images provided by iTunes search API"

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("  ")
	b.WriteString(m.theme.Styles().FaintText.Render(creditLine))

	return b.String()
}

// renderHeader renders the logo, the search field and the media selector.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	media := styles.FaintText.Render("◀ ") +
		styles.AccentText.Bold(true).Render(m.media.String()) +
		styles.FaintText.Render(" ▶")

	parts := []string{
		styles.Logo.Render("artgrid"),
		m.input.View(),
		media,
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar shows the two controls and their current availability.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type command struct {
		key, desc string
		enabled   bool
	}
	commands := []command{
		{"enter", "Get images", m.board.triggerEnabled},
		{"ctrl+p", m.board.playLabel, m.board.playEnabled},
		{"tab", "Media", true},
		{"ctrl+l", "Logs", true},
		{"f1", "More", true},
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		desc := styles.MutedText.Render(c.desc)
		if !c.enabled {
			desc = styles.Disabled.Render(c.desc)
		}
		segments = append(segments, styles.AccentText.Render(c.key)+styles.FaintText.Render(":")+desc)
	}

	segments = append(segments,
		styles.AccentText.Render("ctrl+t")+styles.FaintText.Render(":")+styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// renderStatus renders the progress bar and the status text.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.progress.ViewAs(m.board.progress))
	b.WriteString(" ")

	state := m.machine.State()
	switch state {
	case gallery.Loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(styles.WarningText.Render(m.board.status))
	default:
		status := m.board.status
		room := m.width - m.progress.Width - 4
		style := styles.MutedText
		switch status {
		case gallery.StatusFailed:
			style = styles.DangerText
		case gallery.StatusPrompt:
			style = styles.FaintText
		default:
			status = truncateMiddle(status, room)
		}
		b.WriteString(style.Render(status))
	}

	if state == gallery.Playing {
		b.WriteString("  ")
		b.WriteString(styles.SuccessText.Render("▶ playing"))
	}
	return b.String()
}

// renderGrid lays the slots out in rows of gridColumns cells.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()

	cellWidth := maxInt((m.width/gridColumns)-2, minCellWidth)
	rows := make([]string, 0, gallery.GridSize/gridColumns)
	for start := 0; start < gallery.GridSize; start += gridColumns {
		cells := make([]string, 0, gridColumns)
		for i := start; i < start+gridColumns && i < gallery.GridSize; i++ {
			cells = append(cells, m.renderCell(i, cellWidth, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(i, width int, styles Styles) string {
	index := fmt.Sprintf("#%02d", i+1)

	if !m.board.filled[i] {
		return styles.CellEmpty.Width(width).Height(cellLines).Render("·\n" + index)
	}

	style := styles.Cell
	if i == m.board.changed {
		style = styles.CellChanged
	}
	label := truncate(slotLabel(m.board.slots[i]), width)
	return style.Width(width).Height(cellLines).Render(label + "\n" + index)
}
