package input

import (
	"fmt"
	"sync"

	"github.com/glcompat/glcompat/internal/ring"
)

// DefaultKeyboardCapacity is the event ring size used when none is configured
const DefaultKeyboardCapacity = 128

// KeyState is the transition a key event reports
type KeyState uint8

const (
	KeyRelease KeyState = iota
	KeyPress
	KeyRepeat
)

func (s KeyState) String() string {
	switch s {
	case KeyRelease:
		return "release"
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Pressed reports whether the key is held after this transition
func (s KeyState) Pressed() bool {
	return s != KeyRelease
}

func keyStateOf(a Action) KeyState {
	switch a {
	case ActionRelease:
		return KeyRelease
	case ActionRepeat:
		return KeyRepeat
	default:
		return KeyPress
	}
}

// KeyEvent is one reconciled keyboard event in legacy numbering.
type KeyEvent struct {
	Key        int
	Char       rune
	State      KeyState
	Nanos      int64
	OutOfOrder bool
}

// KeyStateSource answers live key state queries, normally backed by the window.
type KeyStateSource interface {
	KeyDown(key NativeKey) bool
}

// Keyboard buffers reconciled key events for the game thread. It is safe for
// concurrent use: mu guards the payload slots and the ring carries its own lock.
type Keyboard struct {
	mu      sync.Mutex
	tracker *ring.Tracker
	events  []KeyEvent

	repeat  bool
	created bool
	source  KeyStateSource
	down    [KeyboardSize]bool
}

// NewKeyboard creates a keyboard whose event ring holds capacity events.
func NewKeyboard(capacity int, repeat bool) (*Keyboard, error) {
	tracker, err := ring.New("keyboard", capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyboard: %w", err)
	}
	// The slot at the initial read position stays a zero KeyEvent, which is
	// a release of KeyNone with no character.
	return &Keyboard{
		tracker: tracker,
		events:  make([]KeyEvent, capacity),
		repeat:  repeat,
		created: true,
	}, nil
}

// Enqueue appends a reconciled event. Repeat events are discarded unless
// repeat events are enabled.
func (k *Keyboard) Enqueue(ev KeyEvent) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if ev.Key > KeyNone && ev.Key < KeyboardSize {
		k.down[ev.Key] = ev.State.Pressed()
	}
	if ev.State == KeyRepeat && !k.repeat {
		return
	}
	k.events[k.tracker.NextWritePosition()] = ev
	k.tracker.Push()
}

// Next advances to the next buffered event. It returns false when the buffer
// is empty, leaving the current event unchanged.
func (k *Keyboard) Next() bool {
	return k.tracker.Next()
}

// NumEvents returns the number of unread events
func (k *Keyboard) NumEvents() int {
	return k.tracker.Count()
}

// Dropped returns how many events were discarded because the buffer was full
func (k *Keyboard) Dropped() uint64 {
	return k.tracker.Dropped()
}

func (k *Keyboard) current() KeyEvent {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.events[k.tracker.CurrentReadPosition()]
}

// Event returns a copy of the current event
func (k *Keyboard) Event() KeyEvent {
	return k.current()
}

func (k *Keyboard) EventKey() int {
	return k.current().Key
}

func (k *Keyboard) EventCharacter() rune {
	return k.current().Char
}

// EventKeyState reports whether the current event leaves its key held.
func (k *Keyboard) EventKeyState() bool {
	return k.current().State.Pressed()
}

func (k *Keyboard) EventNanoseconds() int64 {
	return k.current().Nanos
}

func (k *Keyboard) IsRepeatEvent() bool {
	return k.current().State == KeyRepeat
}

func (k *Keyboard) EnableRepeatEvents(enable bool) {
	k.mu.Lock()
	k.repeat = enable
	k.mu.Unlock()
}

func (k *Keyboard) AreRepeatEventsEnabled() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.repeat
}

// SetKeySource installs the live key state source. With no source, IsKeyDown
// answers from the events seen so far.
func (k *Keyboard) SetKeySource(src KeyStateSource) {
	k.mu.Lock()
	k.source = src
	k.mu.Unlock()
}

// IsKeyDown reports whether the legacy key is currently held
func (k *Keyboard) IsKeyDown(key int) bool {
	if key <= KeyNone || key >= KeyboardSize {
		return false
	}
	k.mu.Lock()
	src := k.source
	tracked := k.down[key]
	k.mu.Unlock()

	if src == nil {
		return tracked
	}
	native := ToNative(key)
	if native == NativeUnknown {
		return false
	}
	return src.KeyDown(native)
}

// Create is kept for callers written against the legacy lifecycle; a keyboard
// is usable as soon as it is constructed.
func (k *Keyboard) Create() error {
	k.mu.Lock()
	k.created = true
	k.mu.Unlock()
	return nil
}

func (k *Keyboard) Destroy() {
	k.mu.Lock()
	k.created = false
	k.mu.Unlock()
}

func (k *Keyboard) IsCreated() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.created
}

// Poll does nothing. Events arrive through the frame pump.
func (k *Keyboard) Poll() {}
