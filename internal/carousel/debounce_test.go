package carousel

import (
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	d := NewDebouncer(s, 150*time.Millisecond, func() { calls++ })

	for i := 0; i < 10; i++ {
		d.Call()
		s.Advance(149 * time.Millisecond)
	}
	if calls != 0 {
		t.Fatalf("calls = %d during burst, want 0", calls)
	}
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want a single live timer", s.Pending())
	}

	s.Advance(time.Millisecond)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if d.IsPending() {
		t.Fatalf("IsPending() = true after firing")
	}
}

func TestDebouncer_SpacedCalls(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	d := NewDebouncer(s, 50*time.Millisecond, func() { calls++ })

	for i := 0; i < 3; i++ {
		d.Call()
		s.Advance(100 * time.Millisecond)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	d := NewDebouncer(s, 50*time.Millisecond, func() { calls++ })

	d.Call()
	d.Cancel()
	s.Advance(time.Second)

	if calls != 0 {
		t.Fatalf("calls = %d, want 0 (cancelled)", calls)
	}
	if s.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", s.Pending())
	}
}
