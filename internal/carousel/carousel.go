package carousel

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultResizeQuiet is the quiet window a resize burst must observe before
// the layout is recomputed.
const DefaultResizeQuiet = 150 * time.Millisecond

// Presenter applies engine output to whatever draws the track.
type Presenter interface {
	// ApplyOffset translates the track left by offset pixels.
	ApplyOffset(offset float64)
	// SetControls sets the enabled state of the previous/next controls.
	SetControls(prevDisabled, nextDisabled bool)
	// Measure reads live geometry of the first rendered item.
	Measure() Metrics
}

// Watcher defers loading of items that start off screen. The carousel
// registers each such item once at Attach and never calls it again.
type Watcher interface {
	Watch(index int, key string)
}

// Key is a keyboard input the carousel understands.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// Options configure a Carousel.
type Options struct {
	ID             string   // empty generates a uuid
	Items          []string // item keys, fixed for the instance's lifetime
	Wrap           bool
	AutoplayPeriod time.Duration // zero disables autoplay
	Breakpoints    Breakpoints   // zero value uses DefaultBreakpoints
	ResizeQuiet    time.Duration // zero uses DefaultResizeQuiet
	SwipeThreshold float64       // zero uses DefaultSwipeThreshold
	Scheduler      Scheduler     // nil uses a TimerScheduler
	Presenter      Presenter     // nil discards presentation
	Watcher        Watcher       // nil loads nothing lazily
	Logger         *log.Logger   // nil discards logs
}

// Carousel serializes every input source into engine transitions. All state
// is guarded by one mutex, so callbacks from real timer goroutines are safe.
type Carousel struct {
	mu sync.Mutex

	id        string
	items     []string
	engine    *Engine
	bp        Breakpoints
	threshold float64
	sched     Scheduler
	presenter Presenter
	watcher   Watcher
	logger    *log.Logger

	resize       *Debouncer
	width        float64
	pendingWidth float64
	relayouts    int

	drag dragTracker
	auto autoplay

	attached bool
	disposed bool
}

// New builds a carousel's state. It arms no timers and touches no
// presentation until Attach.
func New(opts Options) *Carousel {
	items := make([]string, len(opts.Items))
	copy(items, opts.Items)

	c := &Carousel{
		id:        opts.ID,
		items:     items,
		engine:    NewEngine(len(items), opts.Wrap),
		bp:        opts.Breakpoints,
		threshold: opts.SwipeThreshold,
		sched:     opts.Scheduler,
		presenter: opts.Presenter,
		watcher:   opts.Watcher,
		auto:      autoplay{period: opts.AutoplayPeriod},
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if len(c.bp.Bands) == 0 && c.bp.Fallback == 0 {
		c.bp = DefaultBreakpoints()
	}
	if c.threshold <= 0 {
		c.threshold = DefaultSwipeThreshold
	}
	if c.sched == nil {
		c.sched = NewTimerScheduler(nil)
	}
	if c.presenter == nil {
		c.presenter = discardPresenter{}
	}
	if c.auto.period < 0 {
		c.auto.period = 0
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c.logger = logger.With("carousel", c.id)

	quiet := opts.ResizeQuiet
	if quiet <= 0 {
		quiet = DefaultResizeQuiet
	}
	c.resize = NewDebouncer(c.sched, quiet, c.applyResize)
	return c
}

// ID returns the instance id.
func (c *Carousel) ID() string { return c.id }

// Attach performs the initial layout for width, hands off-screen items to
// the watcher, starts autoplay and presents. Later calls are no-ops.
func (c *Carousel) Attach(width float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attached || c.disposed {
		return
	}
	c.attached = true
	c.width = width
	c.pendingWidth = width
	step := c.relayoutLocked()

	if c.watcher != nil {
		for i := c.engine.Layout().VisibleCount; i < len(c.items); i++ {
			c.watcher.Watch(i, c.items[i])
		}
	}
	c.startAutoplayLocked()

	c.logger.Debug("attached",
		"items", len(c.items),
		"width", width,
		"visible", c.engine.Layout().VisibleCount,
		"position", step.Position,
		"autoplay", c.auto.state)
}

// Dispose cancels every timer and ignores all further input.
func (c *Carousel) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.disposed = true
	c.resize.Cancel()
	c.auto.stop(c.sched)
	c.drag.reset()
	c.logger.Debug("disposed")
}

// Slide moves one unit in dir and presents the result.
func (c *Carousel) Slide(dir Direction) Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slideLocked(dir, "slide")
}

// Click handles a previous/next control activation.
func (c *Carousel) Click(dir Direction) Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slideLocked(dir, "click")
}

// GoTo jumps directly to index, clamped into range.
func (c *Carousel) GoTo(index int) Step {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return c.engine.Step()
	}
	step := c.engine.GoTo(index)
	c.presentLocked(step)
	return step
}

// HandleKey maps arrow keys to slides. It reports whether the key was
// consumed, in which case the host must suppress its default handling.
func (c *Carousel) HandleKey(k Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return false
	}
	switch k {
	case KeyLeft:
		c.slideLocked(Prev, "key")
	case KeyRight:
		c.slideLocked(Next, "key")
	case KeyHome:
		c.presentLocked(c.engine.GoTo(0))
	case KeyEnd:
		c.presentLocked(c.engine.GoTo(c.engine.Layout().MaxPosition))
	default:
		return false
	}
	return true
}

// HandlePointer routes a pointer event by phase.
func (c *Carousel) HandlePointer(phase PointerPhase, x float64) {
	switch phase {
	case PointerDown:
		c.PointerDown(x)
	case PointerMove:
		c.PointerMove(x)
	case PointerUp:
		c.PointerUp(x)
	case PointerCancel:
		c.PointerCancel()
	}
}

// PointerDown starts a gesture and pauses autoplay. A down during an active
// gesture restarts it.
func (c *Carousel) PointerDown(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.drag.down(x)
	if c.auto.pause(c.sched) {
		c.logger.Debug("autoplay paused")
	}
}

// PointerMove tracks the gesture. Moves without a down are ignored.
func (c *Carousel) PointerMove(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.drag.move(x)
}

// PointerUp ends the gesture, slides once if the drag exceeded the swipe
// threshold and resumes autoplay.
func (c *Carousel) PointerUp(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	delta, ok := c.drag.up(x)
	if !ok {
		return
	}
	if dir, swipe := swipeDirection(delta, c.threshold); swipe {
		c.slideLocked(dir, "swipe")
	}
	c.resumeAutoplayLocked()
}

// PointerCancel abandons the gesture without sliding and resumes autoplay.
func (c *Carousel) PointerCancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	if c.drag.cancel() {
		c.resumeAutoplayLocked()
	}
}

// Resize records a viewport width change. The layout is recomputed once the
// resize burst has been quiet for the configured window, using the last width.
func (c *Carousel) Resize(width float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.pendingWidth = width
	c.resize.Call()
}

func (c *Carousel) applyResize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A Resize that landed after this fire was handed off re-armed the
	// debouncer; that fire owns the relayout.
	if c.disposed || c.resize.IsPending() {
		return
	}
	c.width = c.pendingWidth
	step := c.relayoutLocked()
	c.logger.Debug("relayout",
		"width", c.width,
		"visible", c.engine.Layout().VisibleCount,
		"max", c.engine.Layout().MaxPosition,
		"position", step.Position)
}

// StartAutoplay (re)arms autoplay. Calling it while running replaces the
// timer rather than adding a second one.
func (c *Carousel) StartAutoplay() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.startAutoplayLocked()
}

// DisableAutoplay stops autoplay until StartAutoplay is called again.
func (c *Carousel) DisableAutoplay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auto.stop(c.sched)
}

// ToggleAutoplay flips between stopped and running and returns the new state.
func (c *Carousel) ToggleAutoplay() AutoplayState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return c.auto.state
	}
	if c.auto.state == AutoplayStopped {
		c.startAutoplayLocked()
	} else {
		c.auto.stop(c.sched)
	}
	return c.auto.state
}

// startAutoplayLocked arms autoplay, or holds it paused while a gesture is
// in progress.
func (c *Carousel) startAutoplayLocked() {
	if c.drag.active {
		c.auto.hold(c.sched)
		return
	}
	c.auto.start(c.sched, c.autoplayTick)
}

func (c *Carousel) resumeAutoplayLocked() {
	if c.auto.resume(c.sched, c.autoplayTick) {
		c.logger.Debug("autoplay resumed")
	}
}

func (c *Carousel) autoplayTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || !c.auto.live(gen) {
		return
	}
	c.slideLocked(Next, "autoplay")
}

func (c *Carousel) slideLocked(dir Direction, source string) Step {
	if c.disposed {
		return c.engine.Step()
	}
	from := c.engine.Position()
	step := c.engine.Slide(dir)
	c.presentLocked(step)
	c.logger.Debug("slide", "source", source, "dir", dir, "from", from, "to", step.Position)
	return step
}

// relayoutLocked re-measures, recomputes the layout (max position first,
// then the clamp) and presents.
func (c *Carousel) relayoutLocked() Step {
	var metrics Metrics
	if len(c.items) > 0 {
		metrics = c.presenter.Measure()
	}
	layout := ComputeLayout(c.width, len(c.items), c.bp, metrics)
	step := c.engine.Relayout(layout)
	c.relayouts++
	c.presentLocked(step)
	return step
}

func (c *Carousel) presentLocked(step Step) {
	c.presenter.ApplyOffset(step.Offset)
	c.presenter.SetControls(step.PrevDisabled, step.NextDisabled)
}

// State is a point-in-time view of a carousel.
type State struct {
	ID            string
	ItemCount     int
	Width         float64
	Layout        Layout
	Step          Step
	Wrap          bool
	Autoplay      AutoplayState
	Dragging      bool
	Relayouts     int
	ResizePending bool
	Attached      bool
	Disposed      bool
}

// Snapshot returns the current state.
func (c *Carousel) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		ID:            c.id,
		ItemCount:     len(c.items),
		Width:         c.width,
		Layout:        c.engine.Layout(),
		Step:          c.engine.Step(),
		Wrap:          c.engine.Wrap(),
		Autoplay:      c.auto.state,
		Dragging:      c.drag.active,
		Relayouts:     c.relayouts,
		ResizePending: c.resize.IsPending(),
		Attached:      c.attached,
		Disposed:      c.disposed,
	}
}

type discardPresenter struct{}

func (discardPresenter) ApplyOffset(float64)    {}
func (discardPresenter) SetControls(bool, bool) {}
func (discardPresenter) Measure() Metrics       { return Metrics{} }
