// Package ui provides the Bubble Tea terminal interface for artgrid.
//
// # Architecture Overview
//
// Model is the root tea.Model. Its Update method is the only place the
// gallery is touched: key presses, load events, swap ticks and window
// resizes all arrive as messages on the Bubble Tea loop, so the
// gallery.Machine and the board it draws on need no locking.
//
// # Package Structure
//
//   - app.go: Model, message types, commands and the Run function
//   - board.go: gallery.Display and gallery.ErrorReporter implementation
//   - header.go: header, command bar, status line and the image grid
//   - logs.go: log overlay backed by internal/logtail
//   - modal.go: error dialog shown for each failed attempt
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings, also fed to bubbles/help for the footer
//   - theme.go: color palettes and lipgloss styles
//
// # Load Events
//
// A fetch starts gallery.Loader on its own goroutine. The model reads one
// event per message with waitForLoad and re-arms the read after every event
// until the channel closes. Each fetch bumps a sequence number that rides on
// every load message; messages from an earlier fetch are drained and ignored.
//
// # Swap Ticks
//
// Play returns a ticket from the machine and schedules a swapTickMsg with
// tea.Tick. Each tick re-schedules itself only when the machine accepts its
// ticket, so pausing or starting a new fetch ends the chain without a timer
// to cancel.
//
// # Themes
//
// Nightfox, Kanagawa and Slate are available; ctrl+t cycles them and the
// choice is saved to prefs along with the last term and media.
package ui
