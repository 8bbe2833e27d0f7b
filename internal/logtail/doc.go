// Package logtail reads and highlights the tail of artgrid's log file.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines so the last lines of a large,
// rotated-in-place log can be shown without loading the whole file:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		log.Printf("failed to read log: %v", err)
//	}
//
// A non-positive maxLines returns the whole file. A missing file is not an
// error; it simply has no lines yet.
//
// # Load Attempts
//
// Every load attempt logs under a generated id. ForAttempt narrows a slice of
// lines to one attempt, which the log overlay uses to show only the most
// recent search.
//
// # Highlighting
//
// Parse splits lines written with log.Ldate|log.Ltime|log.Lshortfile into
// timestamp, source and message. Highlight renders those parts with
// lipgloss styles supplied by the UI theme.
package logtail
