package carousel

import (
	"sort"
	"sync"
	"time"
)

// Token identifies a scheduled callback. The zero Token is never issued and
// cancelling it is a no-op.
type Token uint64

// Scheduler is the timer capability the carousel runs on.
//
// Implementations must guarantee that a callback whose token was cancelled
// never runs, even if its timer had already expired.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) Token
	ScheduleRepeating(period time.Duration, fn func()) Token
	Cancel(tok Token)
}

// TimerScheduler runs callbacks on real time.Timers. When Dispatch is set,
// expired callbacks are handed to it instead of running on the timer
// goroutine, which lets a host serialize them onto its own event loop.
type TimerScheduler struct {
	mu       sync.Mutex
	next     Token
	timers   map[Token]*time.Timer
	dispatch func(func())
}

// NewTimerScheduler creates a scheduler. dispatch may be nil.
func NewTimerScheduler(dispatch func(func())) *TimerScheduler {
	return &TimerScheduler{
		timers:   make(map[Token]*time.Timer),
		dispatch: dispatch,
	}
}

// SetDispatch replaces the dispatch hook. Callbacks already handed to the
// previous hook are unaffected.
func (s *TimerScheduler) SetDispatch(dispatch func(func())) {
	s.mu.Lock()
	s.dispatch = dispatch
	s.mu.Unlock()
}

// ScheduleOnce runs fn once after delay.
func (s *TimerScheduler) ScheduleOnce(delay time.Duration, fn func()) Token {
	return s.schedule(delay, 0, fn)
}

// ScheduleRepeating runs fn every period until cancelled. A non-positive
// period schedules nothing and returns the zero Token.
func (s *TimerScheduler) ScheduleRepeating(period time.Duration, fn func()) Token {
	if period <= 0 {
		return 0
	}
	return s.schedule(period, period, fn)
}

func (s *TimerScheduler) schedule(delay, period time.Duration, fn func()) Token {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	tok := s.next
	s.timers[tok] = time.AfterFunc(delay, func() { s.expire(tok, period, fn) })
	return tok
}

// expire runs on the timer goroutine. Repeating timers are re-armed here so
// the cadence does not drift with dispatch latency.
func (s *TimerScheduler) expire(tok Token, period time.Duration, fn func()) {
	s.mu.Lock()
	timer, live := s.timers[tok]
	if !live {
		s.mu.Unlock()
		return
	}
	if period > 0 {
		timer.Reset(period)
	}
	dispatch := s.dispatch
	s.mu.Unlock()

	run := func() {
		s.mu.Lock()
		if _, live := s.timers[tok]; !live {
			s.mu.Unlock()
			return
		}
		if period == 0 {
			delete(s.timers, tok)
		}
		s.mu.Unlock()
		fn()
	}

	if dispatch != nil {
		dispatch(run)
		return
	}
	run()
}

// Cancel stops the timer behind tok.
func (s *TimerScheduler) Cancel(tok Token) {
	if tok == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[tok]; ok {
		timer.Stop()
		delete(s.timers, tok)
	}
}

// Pending returns the number of live tokens.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every live token.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, timer := range s.timers {
		timer.Stop()
		delete(s.timers, tok)
	}
}

// ManualScheduler is a virtual clock. Nothing fires until Advance is called,
// and callbacks run synchronously on the caller's goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	next  Token
	tasks map[Token]*manualTask
}

type manualTask struct {
	due    time.Duration
	period time.Duration
	fn     func()
}

// NewManualScheduler creates a virtual clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{tasks: make(map[Token]*manualTask)}
}

// ScheduleOnce runs fn once the clock has advanced by delay.
func (s *ManualScheduler) ScheduleOnce(delay time.Duration, fn func()) Token {
	return s.schedule(delay, 0, fn)
}

// ScheduleRepeating runs fn every period of virtual time.
func (s *ManualScheduler) ScheduleRepeating(period time.Duration, fn func()) Token {
	if period <= 0 {
		return 0
	}
	return s.schedule(period, period, fn)
}

func (s *ManualScheduler) schedule(delay, period time.Duration, fn func()) Token {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.tasks[s.next] = &manualTask{due: s.now + delay, period: period, fn: fn}
	return s.next
}

// Cancel removes tok.
func (s *ManualScheduler) Cancel(tok Token) {
	s.mu.Lock()
	delete(s.tasks, tok)
	s.mu.Unlock()
}

// Advance moves the clock forward by d, firing every task that falls due in
// time order. Tasks scheduled by callbacks fire in the same pass when due.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		tok, task := s.nextDueLocked(target)
		if task == nil {
			break
		}
		s.now = task.due
		if task.period > 0 {
			task.due += task.period
		} else {
			delete(s.tasks, tok)
		}
		fn := task.fn
		s.mu.Unlock()
		fn()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) (Token, *manualTask) {
	toks := make([]Token, 0, len(s.tasks))
	for tok, task := range s.tasks {
		if task.due <= target {
			toks = append(toks, tok)
		}
	}
	if len(toks) == 0 {
		return 0, nil
	}
	sort.Slice(toks, func(i, j int) bool {
		a, b := s.tasks[toks[i]], s.tasks[toks[j]]
		if a.due != b.due {
			return a.due < b.due
		}
		return toks[i] < toks[j]
	})
	return toks[0], s.tasks[toks[0]]
}

// Now returns the elapsed virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of live tokens.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
