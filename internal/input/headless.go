package input

import "sync"

// HeadlessSurface is a Surface with no native window behind it. It tracks
// the cursor state it is asked to set, which is enough to replay recorded
// input and to drive tests.
type HeadlessSurface struct {
	mu      sync.Mutex
	width   int
	height  int
	cursorX float64
	cursorY float64
	grabbed bool
	buttons map[int]bool
	hidden  bool
}

// NewHeadlessSurface creates a visible surface of the given size
func NewHeadlessSurface(width, height int) *HeadlessSurface {
	return &HeadlessSurface{width: width, height: height, buttons: make(map[int]bool)}
}

func (s *HeadlessSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *HeadlessSurface) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
}

func (s *HeadlessSurface) SetCursorPos(x, y float64) {
	s.mu.Lock()
	s.cursorX, s.cursorY = x, y
	s.mu.Unlock()
}

// CursorPos returns the last native cursor position set, top-left origin
func (s *HeadlessSurface) CursorPos() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorX, s.cursorY
}

func (s *HeadlessSurface) SetCursorGrabbed(grabbed bool) {
	s.mu.Lock()
	s.grabbed = grabbed
	s.mu.Unlock()
}

func (s *HeadlessSurface) Grabbed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grabbed
}

func (s *HeadlessSurface) SetButton(button int, down bool) {
	s.mu.Lock()
	s.buttons[button] = down
	s.mu.Unlock()
}

func (s *HeadlessSurface) MouseButtonDown(button int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons[button]
}

func (s *HeadlessSurface) SetVisible(visible bool) {
	s.mu.Lock()
	s.hidden = !visible
	s.mu.Unlock()
}

func (s *HeadlessSurface) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.hidden
}
