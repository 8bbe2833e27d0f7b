package ui

import "github.com/five82/artgrid/internal/gallery"

// report is one failed attempt waiting to be shown.
type report struct {
	cause error
	uri   string
}

// board is the visible gallery state. The machine writes to it through
// gallery.Display and gallery.ErrorReporter; View reads it.
type board struct {
	slots  [gallery.GridSize]string
	filled [gallery.GridSize]bool
	// changed is the slot written last, or -1.
	changed int

	progress       float64
	status         string
	triggerEnabled bool
	playEnabled    bool
	playLabel      string

	pending []report
}

var (
	_ gallery.Display       = (*board)(nil)
	_ gallery.ErrorReporter = (*board)(nil)
)

func newBoard() *board {
	return &board{changed: -1, playLabel: gallery.LabelPlay}
}

func (b *board) SetSlot(index int, ref string) {
	if index < 0 || index >= gallery.GridSize {
		return
	}
	b.slots[index] = ref
	b.filled[index] = true
	b.changed = index
}

func (b *board) SetPlaceholder(index int) {
	if index < 0 || index >= gallery.GridSize {
		return
	}
	b.slots[index] = ""
	b.filled[index] = false
}

func (b *board) SetProgress(fraction float64) {
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	b.progress = fraction
}

func (b *board) SetStatus(text string)          { b.status = text }
func (b *board) SetTriggerEnabled(enabled bool) { b.triggerEnabled = enabled }
func (b *board) SetPlayEnabled(enabled bool)    { b.playEnabled = enabled }
func (b *board) SetPlayLabel(label string)      { b.playLabel = label }

func (b *board) ReportError(cause error, uri string) {
	b.pending = append(b.pending, report{cause: cause, uri: uri})
}

// takeReport removes and returns the oldest pending report.
func (b *board) takeReport() (report, bool) {
	if len(b.pending) == 0 {
		return report{}, false
	}
	r := b.pending[0]
	b.pending = b.pending[1:]
	return r, true
}
