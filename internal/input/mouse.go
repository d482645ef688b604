package input

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/ring"
)

// DefaultMouseCapacity is the event ring size used when none is configured
const DefaultMouseCapacity = 256

// MouseButtonCount is the number of buttons reported to legacy callers
const MouseButtonCount = 8

// Surface is the window the mouse reads its geometry from and steers the
// native cursor through.
type Surface interface {
	Size() (width, height int)
	SetCursorPos(x, y float64)
	SetCursorGrabbed(grabbed bool)
	MouseButtonDown(button int) bool
	Visible() bool
}

// Clock returns a timestamp in nanoseconds
type Clock func() int64

// MouseMove is an absolute cursor position in legacy coordinates
// (origin at the bottom-left corner).
type MouseMove struct {
	X, Y int
}

// MouseButton is a button transition; State is true while held
type MouseButton struct {
	Button int
	State  bool
}

// MouseScroll is a wheel offset in notches
type MouseScroll struct {
	X, Y float64
}

type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotMove
	slotButton
	slotScroll
)

// mouseSlot holds exactly one live record, selected by kind.
type mouseSlot struct {
	kind   slotKind
	move   MouseMove
	button MouseButton
	scroll MouseScroll
}

// Mouse buffers pointer events and tracks accumulated deltas for the game
// thread.
type Mouse struct {
	mu      sync.Mutex
	tracker *ring.Tracker
	slots   []mouseSlot
	timings []int64

	surface Surface
	clock   Clock

	latestX, latestY int
	x, y             int
	dx, dy           int
	dWheelX, dWheelY int

	clip            bool
	grabbed         bool
	ignoreNextDelta int
	// warpEcho skips the native move provoked by recentering on release.
	// It lapses at the end of the next frame if no such move arrives.
	warpEcho bool
}

// NewMouse creates a mouse whose event ring holds capacity events
func NewMouse(capacity int, surface Surface, clock Clock) (*Mouse, error) {
	if surface == nil {
		return nil, fmt.Errorf("failed to create mouse: nil surface")
	}
	tracker, err := ring.New("mouse", capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create mouse: %w", err)
	}
	if clock == nil {
		clock = func() int64 { return 0 }
	}
	return &Mouse{
		tracker: tracker,
		slots:   make([]mouseSlot, capacity),
		timings: make([]int64, capacity),
		surface: surface,
		clock:   clock,
	}, nil
}

func (m *Mouse) push(slot mouseSlot, nanos int64) {
	pos := m.tracker.NextWritePosition()
	m.slots[pos] = slot
	m.timings[pos] = nanos
	m.tracker.Push()
}

// AddMove records a cursor position reported with a top-left origin at the
// time the native callback fired.
func (m *Mouse) AddMove(x, y float64, nanos int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.warpEcho {
		m.warpEcho = false
		return
	}
	m.addMoveLocked(x, y, nanos)
}

func (m *Mouse) addMoveLocked(x, y float64, nanos int64) {

	_, height := m.surface.Size()
	lx := int(x)
	ly := height - int(y)

	m.dx += lx - m.latestX
	m.dy += ly - m.latestY
	m.latestX = lx
	m.latestY = ly

	if m.ignoreNextDelta > 0 {
		m.ignoreNextDelta--
		m.dx = 0
		m.dy = 0
	}

	m.push(mouseSlot{kind: slotMove, move: MouseMove{X: lx, Y: ly}}, nanos)
}

// AddButton records a button transition
func (m *Mouse) AddButton(button int, pressed bool, nanos int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.push(mouseSlot{kind: slotButton, button: MouseButton{Button: button, State: pressed}}, nanos)
}

// AddScroll records a wheel offset and adds it to the accumulated wheel delta
func (m *Mouse) AddScroll(x, y float64, nanos int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dWheelX += int(x)
	m.dWheelY += int(y)
	m.push(mouseSlot{kind: slotScroll, scroll: MouseScroll{X: x, Y: y}}, nanos)
}

// Next advances to the next buffered event
func (m *Mouse) Next() bool {
	return m.tracker.Next()
}

func (m *Mouse) NumEvents() int {
	return m.tracker.Count()
}

func (m *Mouse) Dropped() uint64 {
	return m.tracker.Dropped()
}

func (m *Mouse) slot(pos int) mouseSlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[pos]
}

func (m *Mouse) currentSlot() mouseSlot {
	return m.slot(m.tracker.CurrentReadPosition())
}

// EventButton returns the button of the current event, or -1 if the current
// event is not a button event.
func (m *Mouse) EventButton() int {
	s := m.currentSlot()
	if s.kind != slotButton {
		return -1
	}
	return s.button.Button
}

func (m *Mouse) EventButtonState() bool {
	s := m.currentSlot()
	return s.kind == slotButton && s.button.State
}

func (m *Mouse) EventX() int {
	s := m.currentSlot()
	if s.kind != slotMove {
		return 0
	}
	return s.move.X
}

func (m *Mouse) EventY() int {
	s := m.currentSlot()
	if s.kind != slotMove {
		return 0
	}
	return s.move.Y
}

// EventDX returns the horizontal movement since the previous event. When the
// previous slot holds no move, the absolute position is returned instead.
func (m *Mouse) EventDX() int {
	cur := m.currentSlot()
	if cur.kind != slotMove {
		return 0
	}
	prev := m.slot(m.tracker.LastReadPosition())
	if prev.kind != slotMove {
		return cur.move.X
	}
	return cur.move.X - prev.move.X
}

func (m *Mouse) EventDY() int {
	cur := m.currentSlot()
	if cur.kind != slotMove {
		return 0
	}
	prev := m.slot(m.tracker.LastReadPosition())
	if prev.kind != slotMove {
		return cur.move.Y
	}
	return cur.move.Y - prev.move.Y
}

func (m *Mouse) EventDWheel() int {
	return m.EventDWheelY()
}

func (m *Mouse) EventDWheelX() int {
	s := m.currentSlot()
	if s.kind != slotScroll {
		return 0
	}
	return int(s.scroll.X)
}

func (m *Mouse) EventDWheelY() int {
	s := m.currentSlot()
	if s.kind != slotScroll {
		return 0
	}
	return int(s.scroll.Y)
}

func (m *Mouse) EventNanoseconds() int64 {
	pos := m.tracker.CurrentReadPosition()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timings[pos]
}

// DX returns and resets the horizontal movement accumulated since the last call
func (m *Mouse) DX() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.dx
	m.dx = 0
	return v
}

func (m *Mouse) DY() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.dy
	m.dy = 0
	return v
}

// DWheel returns and resets the accumulated vertical wheel movement
func (m *Mouse) DWheel() int {
	return m.DWheelY()
}

func (m *Mouse) DWheelX() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.dWheelX
	m.dWheelX = 0
	return v
}

func (m *Mouse) DWheelY() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.dWheelY
	m.dWheelY = 0
	return v
}

// X returns the position latched by the last Poll
func (m *Mouse) X() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.x
}

func (m *Mouse) Y() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.y
}

// Poll latches the latest cursor position, clamping it to the window when
// clipping is enabled and the cursor is not grabbed.
func (m *Mouse) Poll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.grabbed && m.clip {
		w, h := m.surface.Size()
		m.latestX = clamp(m.latestX, 0, w-1)
		m.latestY = clamp(m.latestY, 0, h-1)
	}
	m.x = m.latestX
	m.y = m.latestY
}

// endFrame drops a warp echo that did not arrive during the frame.
func (m *Mouse) endFrame() {
	m.mu.Lock()
	m.warpEcho = false
	m.mu.Unlock()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

func (m *Mouse) SetClipMouseCoordinatesToWindow(clip bool) {
	m.mu.Lock()
	m.clip = clip
	m.mu.Unlock()
}

func (m *Mouse) IsClipMouseCoordinatesToWindow() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clip
}

// SetCursorPosition moves the native cursor to a point given in legacy
// coordinates and records the move.
func (m *Mouse) SetCursorPosition(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCursorLocked(x, y)
}

func (m *Mouse) setCursorLocked(x, y int) {
	_, height := m.surface.Size()
	nx, ny := float64(x), float64(height-y)
	m.surface.SetCursorPos(nx, ny)
	m.addMoveLocked(nx, ny, m.clock())
}

func (m *Mouse) IsGrabbed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grabbed
}

// SetGrabbed captures or releases the cursor. Releasing recenters the cursor
// and queues a button event with index -1 so readers see the new position
// even when no further input arrives.
func (m *Mouse) SetGrabbed(grab bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if grab == m.grabbed {
		return
	}
	m.surface.SetCursorGrabbed(grab)
	m.grabbed = grab

	if grab {
		// The first move after grabbing jumps from wherever the free cursor
		// was.
		m.ignoreNextDelta++
		m.dx = 0
		m.dy = 0
		return
	}

	w, h := m.surface.Size()
	m.surface.SetCursorPos(float64(w/2), float64(h-h/2))
	m.warpEcho = true
	m.latestX = w / 2
	m.latestY = h / 2
	m.x = m.latestX
	m.y = m.latestY
	m.push(mouseSlot{kind: slotButton, button: MouseButton{Button: -1, State: false}}, m.clock())
}

// IsButtonDown reports the live state of a native mouse button
func (m *Mouse) IsButtonDown(button int) bool {
	return m.surface.MouseButtonDown(button)
}

// IsInsideWindow approximates cursor containment with window visibility.
func (m *Mouse) IsInsideWindow() bool {
	return m.surface.Visible()
}

func (m *Mouse) ButtonCount() int {
	return MouseButtonCount
}

func (m *Mouse) HasWheel() bool {
	return true
}

// IsCreated always reports true; a mouse exists from construction.
func (m *Mouse) IsCreated() bool {
	return true
}

func (m *Mouse) Create() error { return nil }

func (m *Mouse) Destroy() {}

var buttonNamePattern = regexp.MustCompile(`^BUTTON([0-9]+)$`)

// ButtonName returns the legacy name of a mouse button
func ButtonName(button int) string {
	return "BUTTON" + strconv.Itoa(button)
}

// ButtonIndex parses a legacy button name, returning -1 if it is not one
func ButtonIndex(name string) int {
	match := buttonNamePattern.FindStringSubmatch(name)
	if match == nil {
		return -1
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		logger.Debugf("Mouse button index out of range: %s", name)
		return -1
	}
	return n
}
