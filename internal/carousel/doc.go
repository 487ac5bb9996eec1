// Package carousel implements the position and input engine behind reel's
// horizontally scrolling slide track.
//
// # Overview
//
// A carousel shows a fixed number of items at a time out of an ordered,
// immutable collection. The number shown depends on the viewport width; the
// track is moved by whole items in response to buttons, keys, pointer
// swipes and an optional autoplay timer.
//
// # Components
//
//   - layout.go: Breakpoints and ComputeLayout (visible count, item advance,
//     max position) from explicit width and measured Metrics
//   - engine.go: Engine, the pure position state machine (clamp or wrap)
//   - carousel.go: Carousel, which routes inputs into the engine and applies
//     results through a Presenter
//   - gesture.go: drag tracking and the swipe threshold
//   - autoplay.go: the Stopped/Running/Paused autoplay timer
//   - debounce.go: quiet-window coalescing for resize bursts
//   - scheduler.go: the Scheduler capability with real and manual clocks
//
// # Data Flow
//
//	input ──> Carousel ──> Engine.Slide / Engine.Relayout
//	                           │
//	                           └──> Presenter.ApplyOffset + SetControls
//
//	Resize(w) ──> Debouncer (150ms quiet) ──> Measure ──> ComputeLayout ──> Relayout
//
// # Invariants
//
//   - 0 <= position <= maxPosition after every operation
//   - maxPosition is recomputed before position is clamped against it
//   - at most one active drag and one autoplay timer per instance
//   - a timer token is cancelled before another of the same kind is armed
//
// # Wrap vs Clamp
//
// In clamp mode the previous control is disabled at position 0 and the next
// control at maxPosition. In wrap mode sliding past either end jumps to the
// opposite end in one step and neither control is ever disabled.
//
// # Concurrency
//
// Every exported Carousel method takes the instance lock, so timer callbacks
// from TimerScheduler goroutines are safe. Hosts with their own event loop
// can pass a dispatch hook to NewTimerScheduler to run callbacks there
// instead. Presenter and Watcher methods are called with the lock held and
// must not call back into the Carousel.
//
// # Lifecycle
//
//	c := carousel.New(carousel.Options{Items: keys, AutoplayPeriod: 3 * time.Second})
//	c.Attach(viewportWidth)
//	defer c.Dispose()
//
// New touches nothing outside the instance. Attach lays out, registers
// off-screen items with the Watcher and starts autoplay. Dispose cancels all
// timers; later input is ignored.
//
// # Testing
//
// ManualScheduler is a virtual clock: nothing fires until Advance, and
// callbacks run on the calling goroutine, so timing tests are deterministic.
package carousel
