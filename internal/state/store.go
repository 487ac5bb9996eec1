package state

import "sync"

// Frame is the presentation state the renderer draws from.
type Frame struct {
	Offset       float64 // track translation in pixels
	PrevDisabled bool
	NextDisabled bool
	Applied      int // number of offset applications since start
}

// Store coordinates presenter writes with renderer reads.
type Store struct {
	mu    sync.RWMutex
	frame Frame
}

// ApplyOffset records a new track offset.
func (s *Store) ApplyOffset(offset float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame.Offset = offset
	s.frame.Applied++
}

// SetControls records the navigation control state.
func (s *Store) SetControls(prevDisabled, nextDisabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame.PrevDisabled = prevDisabled
	s.frame.NextDisabled = nextDisabled
}

// Snapshot returns a copy of the current frame.
func (s *Store) Snapshot() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}
