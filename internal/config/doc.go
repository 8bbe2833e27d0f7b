// Package config loads artgrid's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/artgrid/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	endpoint = "https://itunes.apple.com/search"
//	limit = 200
//	media = "music"
//	swap_interval = "2s"
//	collect_delay = "4ms"
//	requests_per_minute = 20
//	log_file = "~/.local/state/artgrid/artgrid.log"
//	user_agent = "artgrid/0.1"
//
// Every field is optional. Durations use Go duration syntax. The media value
// is matched case-insensitively against the selectable media types.
// requests_per_minute = 0 disables client-side pacing.
//
// # Validation
//
// A limit below the 21-result quota can never fill the grid, so Load
// rejects it along with non-positive swap intervals and negative delays.
// Missing config files are not an error.
package config
