// Package config handles loading and parsing reel configuration files.
//
// # Overview
//
// This package reads reel's TOML configuration: carousel behaviour (wrap,
// autoplay, resize quiet window, swipe threshold), the responsive breakpoint
// table, terminal-to-pixel conversion, card spacing, and an optional default
// deck path.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/reel/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/reel/config.toml
//   - wrap: false (clamp mode)
//   - autoplay: disabled
//   - resize_quiet: 150ms
//   - swipe_threshold: 50 (px)
//   - cell_px: 10 (px per terminal column)
//   - breakpoints: <768 → 1, <1024 → 2, <1400 → 3, otherwise 4
//
// # TOML Format
//
//	wrap = true
//	autoplay = "4s"
//	resize_quiet = "150ms"
//	swipe_threshold = 50
//	cell_px = 10
//	card_margin = 1
//	card_gap = 1
//	deck = "~/decks/talk.toml"
//	fallback_visible = 4
//
//	[[breakpoints]]
//	below = 768
//	visible = 1
//
// Durations use Go duration syntax. A [[breakpoints]] list replaces the
// default bands entirely; fallback_visible applies at and above the widest
// band.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, bad durations, and bands with visible < 1
//
// Missing config files are NOT an error. reel works out-of-the-box.
//
// # Testing Considerations
//
// Tests set HOME to a temporary directory so the default path never touches
// the real user configuration.
package config
