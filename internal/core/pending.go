package core

import "github.com/dkeye/ShareBridge/internal/domain"

// PendingStore holds at most one shared value that the UI runtime has not
// collected yet. One store lives for the whole host process and is owned by
// the Bridge; it is never persisted.
//
// Not safe for concurrent use: callers confine it to the main loop.
type PendingStore struct {
	value   domain.SharedContent
	present bool
}

func NewPendingStore() *PendingStore {
	return &PendingStore{}
}

// Set overwrites any unconsumed value. Last write wins.
func (s *PendingStore) Set(v domain.SharedContent) {
	s.value = v
	s.present = true
}

// Take returns the held value and clears the slot.
func (s *PendingStore) Take() (domain.SharedContent, bool) {
	if !s.present {
		return "", false
	}
	v := s.value
	s.value = ""
	s.present = false
	return v, true
}

func (s *PendingStore) Pending() bool { return s.present }
