package carousel

import "math"

// DefaultSwipeThreshold is the net horizontal travel a drag must exceed to
// count as a swipe.
const DefaultSwipeThreshold = 50.0

// PointerPhase is the stage of a pointer interaction.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

// dragTracker follows a single pointer gesture along the x axis.
type dragTracker struct {
	active bool
	startX float64 // position at pointer down
	lastX  float64 // most recent position
}

func (d *dragTracker) down(x float64) {
	d.active = true
	d.startX = x
	d.lastX = x
}

// move records x and reports whether a gesture was in progress.
func (d *dragTracker) move(x float64) bool {
	if !d.active {
		return false
	}
	d.lastX = x
	return true
}

// up ends the gesture and returns its net displacement. ok is false for a
// release without a preceding down.
func (d *dragTracker) up(x float64) (delta float64, ok bool) {
	if !d.active {
		return 0, false
	}
	d.lastX = x
	delta = d.lastX - d.startX
	d.reset()
	return delta, true
}

func (d *dragTracker) cancel() bool {
	if !d.active {
		return false
	}
	d.reset()
	return true
}

func (d *dragTracker) reset() {
	*d = dragTracker{}
}

// swipeDirection maps a net displacement to a slide. Dragging the track left
// reveals the next items.
func swipeDirection(delta, threshold float64) (Direction, bool) {
	if math.Abs(delta) <= threshold {
		return 0, false
	}
	if delta < 0 {
		return Next, true
	}
	return Prev, true
}
