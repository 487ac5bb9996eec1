// Package app provides the orchestration layer for the reel application.
//
// # Overview
//
// This package wires together configuration, preferences, the slide deck,
// logging and the UI. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load reel configuration from ~/.config/reel/config.toml
//  2. Apply command-line overrides (--wrap, --autoplay)
//  3. Build the logger (file or discard; the TUI owns the terminal)
//  4. Load preferences (theme, remembered positions)
//  5. Resolve the deck: argument, then config, then the built-in demo
//  6. Start the TUI and block until the user quits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Read reel config
//	       ├─────> newLogger()      charmbracelet/log, HH:MM:SS.ms stamps
//	       ├─────> prefs.Load()     Theme and last positions
//	       ├─────> resolveDeck()    TOML/YAML deck or demo
//	       └─────> ui.Run()         Start TUI (blocks)
//
// # Error Handling
//
// Config and deck errors abort startup with a wrapped error ("load config:",
// "load deck:"). Preferences never fail startup; invalid files fall back to
// defaults.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	err := app.Run(ctx, app.Options{DeckPath: "talk.toml", Verbose: true, LogFile: "/tmp/reel.log"})
package app
