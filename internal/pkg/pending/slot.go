// Package pending holds the hand-off between a fingerprint scanned in
// register mode and the admin form that completes the registration. It is
// a queue of capacity one: the last scan wins, and a successful
// registration clears it.
package pending

import (
	"sync"
	"time"
)

// Fingerprint is a scanned-but-unregistered fingerprint ID waiting for
// the registration form.
type Fingerprint struct {
	ID        int
	ScannedAt time.Time
}

// Slot is the single-entry store. Safe for concurrent use.
type Slot struct {
	mu      sync.Mutex
	current *Fingerprint
}

func NewSlot() *Slot {
	return &Slot{}
}

// Set stores a scanned fingerprint ID, overwriting any previous one.
func (s *Slot) Set(id int, scannedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &Fingerprint{ID: id, ScannedAt: scannedAt}
}

// Get returns the pending fingerprint, if any.
func (s *Slot) Get() (Fingerprint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Fingerprint{}, false
	}
	return *s.current, true
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
