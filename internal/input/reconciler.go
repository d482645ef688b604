package input

import (
	"unicode"
	"unicode/utf16"
)

// Reconciler fuses native key and char callbacks into legacy key events.
//
// Character-producing keys are held back after their press until the matching
// char callback supplies the character. A release that overtakes its char is
// remembered on the staged event and emitted right after the press once the
// char arrives, or when the frame ends without one.
type Reconciler struct {
	kb *Keyboard

	stage        KeyEvent
	staged       bool
	releaseNanos int64
	cancelChar   bool
}

// NewReconciler creates a reconciler feeding kb
func NewReconciler(kb *Keyboard) *Reconciler {
	return &Reconciler{kb: kb}
}

// Key handles one native key callback
func (r *Reconciler) Key(key NativeKey, scancode int, action Action, mods Mods, nanos int64) {
	r.cancelChar = false
	legacy := ToLegacy(key)
	state := keyStateOf(action)

	if !key.IsCharacterKey() {
		r.kb.Enqueue(KeyEvent{Key: legacy, Char: controlChar(key), State: state, Nanos: nanos})
		return
	}

	if mods&ModControl != 0 && mods&ModAlt == 0 {
		// Ctrl chords produce no usable char callback, so synthesize the
		// control character and swallow whatever char follows.
		r.kb.Enqueue(KeyEvent{Key: legacy, Char: rune(key) & 0x1F, State: state, Nanos: nanos})
		r.cancelChar = true
		return
	}

	if state != KeyRelease {
		r.stage = KeyEvent{Key: legacy, Char: CharNone, State: state, Nanos: nanos}
		r.staged = true
		r.releaseNanos = 0
		return
	}

	if r.staged && r.stage.Key == legacy {
		r.stage.OutOfOrder = true
		r.releaseNanos = nanos
		return
	}
	r.kb.Enqueue(KeyEvent{Key: legacy, Char: CharNone, State: KeyRelease, Nanos: nanos})
}

// Char handles one native char callback. Codepoints outside the basic
// multilingual plane are split into UTF-16 code units; only the first unit
// joins the staged key event.
func (r *Reconciler) Char(cp rune, nanos int64) {
	if r.cancelChar {
		r.cancelChar = false
		return
	}

	units := []rune{cp}
	if cp > 0xFFFF {
		if hi, lo := utf16.EncodeRune(cp); hi != unicode.ReplacementChar {
			units = []rune{hi, lo}
		}
	}

	first := units[0]
	if r.staged {
		r.stage.Char = first
		r.emitStage()
	} else {
		r.kb.Enqueue(KeyEvent{Key: KeyNone, Char: first, State: KeyPress, Nanos: nanos})
	}
	for _, u := range units[1:] {
		r.kb.Enqueue(KeyEvent{Key: KeyNone, Char: u, State: KeyPress, Nanos: nanos})
	}
}

// Flush resolves a stage that never received its char. It runs once at the
// end of every poll cycle.
func (r *Reconciler) Flush() {
	if r.staged {
		r.emitStage()
	}
}

// Pending reports whether a key event is waiting for its char
func (r *Reconciler) Pending() bool {
	return r.staged
}

func (r *Reconciler) emitStage() {
	ev := r.stage
	r.stage = KeyEvent{}
	r.staged = false
	r.releaseNanos = 0

	r.kb.Enqueue(ev)
	if ev.OutOfOrder {
		release := ev
		release.State = KeyRelease
		release.Nanos = r.releaseNanos
		r.kb.Enqueue(release)
	}
}

func controlChar(key NativeKey) rune {
	switch key {
	case NativeEnter:
		return 0x0D
	case NativeEscape:
		return 0x1B
	case NativeTab:
		return 0x09
	case NativeBackspace:
		return 0x08
	default:
		return CharNone
	}
}
