package input

import "sync"

// EventKind identifies which native callback produced a RawEvent
type EventKind uint8

const (
	EventKey EventKind = iota + 1
	EventChar
	EventCursorPos
	EventMouseButton
	EventScroll
	EventFocus
	EventIconify
	EventSize
	EventPos
	EventRefresh
	EventFramebufferSize
)

var eventKindNames = map[EventKind]string{
	EventKey:             "key",
	EventChar:            "char",
	EventCursorPos:       "cursor_pos",
	EventMouseButton:     "mouse_button",
	EventScroll:          "scroll",
	EventFocus:           "focus",
	EventIconify:         "iconify",
	EventSize:            "size",
	EventPos:             "pos",
	EventRefresh:         "refresh",
	EventFramebufferSize: "framebuffer_size",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action mirrors the native key/button action values
type Action int

const (
	ActionRelease Action = 0
	ActionPress   Action = 1
	ActionRepeat  Action = 2
)

// Mods mirrors the native modifier bit set
type Mods int

const (
	ModShift    Mods = 0x0001
	ModControl  Mods = 0x0002
	ModAlt      Mods = 0x0004
	ModSuper    Mods = 0x0008
	ModCapsLock Mods = 0x0010
	ModNumLock  Mods = 0x0020
)

// RawEvent is one native callback invocation, captured as plain values so it
// can be queued, recorded and replayed without a window.
//
// Field use per kind:
//   - key: Key, Scancode, Action, Mods
//   - char: Char
//   - cursor_pos, scroll: X, Y (cursor origin is the top-left corner)
//   - mouse_button: Key (button index), Action, Mods
//   - focus, iconify: Flag
//   - size, pos, framebuffer_size: W, H
type RawEvent struct {
	Kind     EventKind `msgpack:"k"`
	Key      NativeKey `msgpack:"key,omitempty"`
	Scancode int       `msgpack:"sc,omitempty"`
	Action   Action    `msgpack:"a,omitempty"`
	Mods     Mods      `msgpack:"m,omitempty"`
	Char     rune      `msgpack:"c,omitempty"`
	X        float64   `msgpack:"x,omitempty"`
	Y        float64   `msgpack:"y,omitempty"`
	W        int       `msgpack:"w,omitempty"`
	H        int       `msgpack:"h,omitempty"`
	Flag     bool      `msgpack:"f,omitempty"`
	Nanos    int64     `msgpack:"t"`
}

// Intake collects raw events from native callbacks until the frame loop
// drains them. It is safe for concurrent use.
type Intake struct {
	mu      sync.Mutex
	pending []RawEvent
	spare   []RawEvent
}

// NewIntake creates an intake sized for a typical frame
func NewIntake() *Intake {
	return &Intake{
		pending: make([]RawEvent, 0, 64),
		spare:   make([]RawEvent, 0, 64),
	}
}

// Push appends an event
func (q *Intake) Push(ev RawEvent) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Drain returns every queued event in arrival order. The returned slice is
// only valid until the next call to Drain.
func (q *Intake) Drain() []RawEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Len returns the number of queued events
func (q *Intake) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
