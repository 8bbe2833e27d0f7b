package gallery

// GridSize is the number of visible grid slots.
const GridSize = 20

// Status line and control texts.
const (
	StatusPrompt  = "Type in a term, select a media type, then press enter"
	StatusLoading = "Getting images..."
	StatusFailed  = "last attempt to get images failed..."

	LabelPlay  = "Play"
	LabelPause = "Pause"
)

// Display receives every visible change the gallery makes. Calls arrive in
// the order they must be applied, always from the UI loop.
type Display interface {
	SetSlot(index int, ref string)
	SetPlaceholder(index int)
	SetProgress(fraction float64)
	SetStatus(text string)
	SetTriggerEnabled(enabled bool)
	SetPlayEnabled(enabled bool)
	SetPlayLabel(label string)
}

// ErrorReporter surfaces a failed attempt together with the link it used.
type ErrorReporter interface {
	ReportError(cause error, uri string)
}

type nopDisplay struct{}

func (nopDisplay) SetSlot(int, string) {}
func (nopDisplay) SetPlaceholder(int) {}
func (nopDisplay) SetProgress(float64) {}
func (nopDisplay) SetStatus(string) {}
func (nopDisplay) SetTriggerEnabled(bool) {}
func (nopDisplay) SetPlayEnabled(bool) {}
func (nopDisplay) SetPlayLabel(string) {}

type nopReporter struct{}

func (nopReporter) ReportError(error, string) {}
