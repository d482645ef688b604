// Package window mirrors native window state for the game thread and holds
// the geometry helpers used by the display.
package window

import (
	"sync"

	"github.com/glcompat/glcompat/internal/input"
)

// State is the window state as last reported by native callbacks. Size
// changes are latched and become visible on the next Commit, so a resize is
// reported for exactly one frame.
type State struct {
	mu sync.Mutex

	focused bool
	visible bool
	dirty   bool

	width, height int
	x, y          int
	fbWidth       int
	fbHeight      int

	latestWidth   int
	latestHeight  int
	latestResized bool
	resized       bool
}

// NewState creates a visible, unfocused state of the given size
func NewState(width, height int) *State {
	return &State{
		visible:  true,
		width:    width,
		height:   height,
		fbWidth:  width,
		fbHeight: height,
	}
}

// Apply updates the state from a window callback. Other event kinds are
// ignored.
func (s *State) Apply(ev input.RawEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case input.EventFocus:
		s.focused = ev.Flag
	case input.EventIconify:
		s.visible = !ev.Flag
	case input.EventSize:
		s.latestResized = true
		s.latestWidth = ev.W
		s.latestHeight = ev.H
	case input.EventPos:
		s.x = ev.W
		s.y = ev.H
	case input.EventRefresh:
		s.dirty = true
	case input.EventFramebufferSize:
		s.fbWidth = ev.W
		s.fbHeight = ev.H
	}
}

// Commit publishes a latched resize. It runs once per frame.
func (s *State) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latestResized {
		s.latestResized = false
		s.resized = true
		s.width = s.latestWidth
		s.height = s.latestHeight
		return
	}
	s.resized = false
}

func (s *State) Focused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

func (s *State) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *State) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// ClearDirty marks the window contents as presented
func (s *State) ClearDirty() {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
}

// Resized reports whether the last Commit published a new size
func (s *State) Resized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resized
}

func (s *State) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *State) Pos() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x, s.y
}

func (s *State) FramebufferSize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fbWidth, s.fbHeight
}

// SetPos sets the position without a callback, as done at creation
func (s *State) SetPos(x, y int) {
	s.mu.Lock()
	s.x, s.y = x, y
	s.mu.Unlock()
}

// SetFramebufferSize sets the framebuffer size without a callback
func (s *State) SetFramebufferSize(w, h int) {
	s.mu.Lock()
	s.fbWidth, s.fbHeight = w, h
	s.mu.Unlock()
}
