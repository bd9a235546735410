// Package theme holds the light/dark mode flag the renderer polls each frame.
package theme

import "sync/atomic"

// Mode is the active colour theme.
type Mode uint32

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Parse maps a theme attribute value to a Mode. Only the exact value "dark"
// selects Dark; anything else is Light.
func Parse(s string) Mode {
	if s == "dark" {
		return Dark
	}
	return Light
}

// Store is the shared theme flag. The zero value is Light and it is safe for
// concurrent use. A nil *Store reads as Light.
type Store struct {
	v atomic.Uint32
}

func NewStore(m Mode) *Store {
	s := &Store{}
	s.Set(m)
	return s
}

func (s *Store) Mode() Mode {
	if s == nil {
		return Light
	}
	if Mode(s.v.Load()) == Dark {
		return Dark
	}
	return Light
}

func (s *Store) Set(m Mode) { s.v.Store(uint32(m)) }

// Toggle flips the mode and returns the new one.
func (s *Store) Toggle() Mode {
	for {
		old := s.v.Load()
		next := Dark
		if Mode(old) == Dark {
			next = Light
		}
		if s.v.CompareAndSwap(old, uint32(next)) {
			return next
		}
	}
}
