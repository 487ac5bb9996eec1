package carousel

// Direction is a single unit of travel along the track.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Prev:
		return "prev"
	case Next:
		return "next"
	default:
		return "none"
	}
}

// Step is the observable result of a position change.
type Step struct {
	Position     int
	Offset       float64
	PrevDisabled bool
	NextDisabled bool
}

// Engine is the pure position state machine. It has no timers, no locking
// and no presentation; Carousel wraps it with those.
type Engine struct {
	itemCount int
	wrap      bool
	layout    Layout
	position  int
}

// NewEngine builds an engine for itemCount items. Until Relayout runs it
// assumes one visible item and the default advance.
func NewEngine(itemCount int, wrap bool) *Engine {
	if itemCount < 0 {
		itemCount = 0
	}
	return &Engine{
		itemCount: itemCount,
		wrap:      wrap,
		layout: Layout{
			VisibleCount: 1,
			ItemAdvance:  DefaultItemAdvance,
			MaxPosition:  maxPosition(itemCount, 1),
		},
	}
}

// Relayout installs a freshly computed layout and re-clamps the position
// against its max.
func (e *Engine) Relayout(l Layout) Step {
	l.VisibleCount = atLeastOne(l.VisibleCount)
	l.MaxPosition = maxPosition(e.itemCount, l.VisibleCount)
	if l.ItemAdvance <= 0 {
		l.ItemAdvance = DefaultItemAdvance
	}
	e.layout = l
	e.position = clamp(e.position, 0, l.MaxPosition)
	return e.Step()
}

// Slide moves one unit in dir, clamping or wrapping at the ends.
func (e *Engine) Slide(dir Direction) Step {
	if e.itemCount == 0 || (dir != Prev && dir != Next) {
		return e.Step()
	}
	maxPos := e.layout.MaxPosition
	next := e.position + int(dir)
	switch {
	case !e.wrap:
		next = clamp(next, 0, maxPos)
	case next > maxPos:
		next = 0
	case next < 0:
		next = maxPos
	}
	e.position = next
	return e.Step()
}

// GoTo jumps to index, clamped into range.
func (e *Engine) GoTo(index int) Step {
	if e.itemCount > 0 {
		e.position = clamp(index, 0, e.layout.MaxPosition)
	}
	return e.Step()
}

// Step reports the current position, offset and control reachability.
func (e *Engine) Step() Step {
	s := Step{
		Position: e.position,
		Offset:   float64(e.position) * e.layout.ItemAdvance,
	}
	if !e.wrap {
		s.PrevDisabled = e.position == 0
		s.NextDisabled = e.position == e.layout.MaxPosition
	}
	return s
}

// Position returns the index of the leftmost visible item.
func (e *Engine) Position() int { return e.position }

// Layout returns the layout last installed by Relayout.
func (e *Engine) Layout() Layout { return e.layout }

// Wrap reports whether the engine wraps around at the ends.
func (e *Engine) Wrap() bool { return e.wrap }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
