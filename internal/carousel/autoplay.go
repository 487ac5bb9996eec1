package carousel

import "time"

// AutoplayState is the autoplay timer's lifecycle stage.
type AutoplayState int

const (
	AutoplayStopped AutoplayState = iota
	AutoplayRunning
	AutoplayPaused
)

func (s AutoplayState) String() string {
	switch s {
	case AutoplayRunning:
		return "running"
	case AutoplayPaused:
		return "paused"
	default:
		return "stopped"
	}
}

// autoplay owns the single repeating timer. All methods assume the owning
// Carousel's lock is held.
type autoplay struct {
	period time.Duration
	state  AutoplayState
	token  Token
	gen    uint64 // identifies the current arming; stale ticks carry an older value
}

func (a *autoplay) enabled() bool {
	return a.period > 0
}

// start (re)arms the timer. Any live token is cancelled first so at most one
// timer exists.
func (a *autoplay) start(sched Scheduler, tick func(gen uint64)) {
	a.stop(sched)
	if !a.enabled() {
		return
	}
	a.gen++
	gen := a.gen
	a.token = sched.ScheduleRepeating(a.period, func() { tick(gen) })
	a.state = AutoplayRunning
}

// hold arms nothing but leaves autoplay paused, so the end of the current
// gesture starts it.
func (a *autoplay) hold(sched Scheduler) {
	a.stop(sched)
	if a.enabled() {
		a.state = AutoplayPaused
	}
}

// pause suspends a running timer. Resuming arms a fresh full period.
func (a *autoplay) pause(sched Scheduler) bool {
	if a.state != AutoplayRunning {
		return false
	}
	sched.Cancel(a.token)
	a.token = 0
	a.gen++
	a.state = AutoplayPaused
	return true
}

func (a *autoplay) resume(sched Scheduler, tick func(gen uint64)) bool {
	if a.state != AutoplayPaused {
		return false
	}
	a.start(sched, tick)
	return true
}

func (a *autoplay) stop(sched Scheduler) {
	sched.Cancel(a.token)
	a.token = 0
	a.gen++
	a.state = AutoplayStopped
}

// live reports whether a tick from arming gen should still slide.
func (a *autoplay) live(gen uint64) bool {
	return gen == a.gen && a.state == AutoplayRunning
}
