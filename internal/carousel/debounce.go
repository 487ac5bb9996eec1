package carousel

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one callback that fires after
// delay has passed with no further calls. Every Call restarts the delay.
type Debouncer struct {
	mu       sync.Mutex
	sched    Scheduler
	delay    time.Duration
	token    Token
	seq      uint64 // detects callbacks superseded after they were handed off
	callback func()
}

// NewDebouncer creates a debouncer that schedules on sched.
func NewDebouncer(sched Scheduler, delay time.Duration, callback func()) *Debouncer {
	return &Debouncer{sched: sched, delay: delay, callback: callback}
}

// Call cancels any pending fire and schedules a new one.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sched.Cancel(d.token)
	d.seq++
	current := d.seq
	d.token = d.sched.ScheduleOnce(d.delay, func() {
		d.mu.Lock()
		if d.seq != current || d.callback == nil {
			d.mu.Unlock()
			return
		}
		d.token = 0
		d.mu.Unlock()
		d.callback()
	})
}

// Cancel drops the pending fire, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sched.Cancel(d.token)
	d.token = 0
	d.seq++
}

// IsPending reports whether a fire is scheduled.
func (d *Debouncer) IsPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.token != 0
}
