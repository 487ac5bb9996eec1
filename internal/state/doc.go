// Package state holds the presentation frame shared between the carousel
// engine and the renderer.
//
// # Overview
//
// The carousel never draws anything itself. It reports a track offset and
// the enabled state of its two navigation controls; Store records those and
// the renderer reads a Snapshot whenever it draws.
//
//	Carousel ──ApplyOffset/SetControls──> Store ──Snapshot──> View()
//
// # Concurrency Model
//
// Store uses a readers-writer lock. Writes come from whichever goroutine
// runs the carousel transition (the UI loop, or a timer goroutine when no
// dispatch hook is installed); reads come from rendering. Frame is a plain
// value, so Snapshot copies are independent of the store.
//
// # Testing Considerations
//
// The zero Store is ready to use and its Snapshot is the zero Frame.
package state
