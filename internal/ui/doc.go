// Package ui provides the terminal host for reel's slide carousel.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It owns no navigation logic: every input
// is translated into a call on a carousel.Carousel, which decides the new
// position and reports it back through a presenter. The program's Update
// loop is the single thread all state transitions happen on.
//
// # Package Structure
//
//   - app.go: Model, Update loop, lifecycle (first size attaches, quit disposes)
//   - track.go: cell/pixel geometry and the trackView presenter
//   - mouse.go: screen regions and mouse-to-pointer mapping
//   - render.go: title bar, track slice, controls and position dots
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go, style_helpers.go, strings.go: colors and text helpers
//
// # Geometry
//
// The carousel works in pixels; the terminal works in cells. Each column is
// cell_px pixels wide (config), so a 106 column terminal leaves a 100 column
// track between the two 3 column controls: a 1000px viewport. Card widths are
// derived from the same breakpoint table the carousel uses, which keeps the
// rendered card count equal to the engine's visible count. Measure reports
// card width, margin and gap in pixels so item advance is a whole number of
// columns and offsets never fall between cells.
//
// # Event Flow
//
//  1. The first tea.WindowSizeMsg attaches the carousel and primes the
//     slides on the first page; later ones call Resize (debounced).
//  2. Keys map to carousel.Key values; space toggles autoplay.
//  3. Mouse presses on the controls Click; presses in the track start a
//     pointer gesture; motion and release continue it.
//  4. Timer callbacks from the TimerScheduler arrive as dispatchMsg values
//     and run inside Update.
//  5. After every message the model reveals slides now on screen to the
//     deck loader and moves the position dots.
//  6. Quit (or context cancellation) disposes the carousel and records the
//     final position for the deck in prefs.
//
// # Rendering
//
// View renders only the cards that intersect the viewport, joins them with
// lipgloss, and cuts each line at the current offset with ansi.Cut. The
// offset comes from state.Store, written by the presenter.
//
// # Key Bindings
//
//   - ←/→: Previous/next
//   - Home/End: First/last position
//   - Space: Toggle autoplay
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Quit
//
// # Testing Considerations
//
// Tests build the Model with a carousel.ManualScheduler and drive Update
// directly with tea messages, advancing virtual time for resize and autoplay.
package ui
