package ui

// Grid geometry.
const (
	// gridColumns is the number of cells per grid row.
	gridColumns = 5

	// minCellWidth keeps labels readable on narrow terminals.
	minCellWidth = 12

	// cellLines is the number of text lines inside a cell.
	cellLines = 2
)

// Log overlay limits.
const (
	// LogLineLimit is the number of log lines read for the overlay.
	LogLineLimit = 500
)

// Chrome dimensions.
const (
	// minProgressWidth bounds the progress bar on narrow terminals.
	minProgressWidth = 10
)
