// Package app provides the orchestration layer for artgrid.
//
// # Overview
//
// This package wires together configuration, logging, preferences, the
// search client and the UI. It is the composition root where every
// dependency is built and connected.
//
// # Startup
//
//  1. Load config from ~/.config/artgrid/config.toml (defaults when missing)
//  2. Route the standard logger to the rotating log file
//  3. Load prefs; command line options override them, prefs override config
//  4. Build the iTunes client, the collector and the gallery loader
//  5. Run the TUI and a shutdown watcher under one errgroup
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config
//	       ├─────> logging.Setup()    Rotating log file
//	       ├─────> prefs.Load()       Last theme, term and media
//	       ├─────> itunes.NewClient() Paced HTTP client
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Per fetch:
//	┌─────────────────────────────────────────┐
//	│ gallery.Loader goroutine                │
//	│  ├─> Client.Fetch()                     │
//	│  ├─> Collector.Collect()  progress      │
//	│  └─> LoadEvent channel                  │
//	│      └─> UI loop applies to Machine     │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Run returns configuration, logging and flag errors. Search failures never
// leave the UI; they are shown in a dialog and logged.
package app
