package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyboard(t *testing.T, repeat bool) *Keyboard {
	t.Helper()
	kb, err := NewKeyboard(DefaultKeyboardCapacity, repeat)
	require.NoError(t, err)
	return kb
}

// drain reads every buffered event through the public accessors
func drain(kb *Keyboard) []KeyEvent {
	var out []KeyEvent
	for kb.Next() {
		out = append(out, kb.Event())
	}
	return out
}

func TestReconcilerOutOfOrderRelease(t *testing.T) {
	kb := newKeyboard(t, false)
	r := NewReconciler(kb)

	r.Key(NativeA, 30, ActionPress, 0, 10)
	r.Key(NativeA, 30, ActionRelease, 0, 20)
	assert.Equal(t, 0, kb.NumEvents(), "nothing is emitted before the char arrives")
	assert.True(t, r.Pending())

	r.Char('a', 30)
	assert.False(t, r.Pending())

	events := drain(kb)
	require.Len(t, events, 2)
	assert.Equal(t, KeyEvent{Key: KeyA, Char: 'a', State: KeyPress, Nanos: 10, OutOfOrder: true}, events[0])
	assert.Equal(t, KeyEvent{Key: KeyA, Char: 'a', State: KeyRelease, Nanos: 20, OutOfOrder: true}, events[1])
}

func TestReconcilerInOrder(t *testing.T) {
	kb := newKeyboard(t, false)
	r := NewReconciler(kb)

	r.Key(NativeA, 30, ActionPress, 0, 10)
	r.Char('a', 11)
	r.Key(NativeA, 30, ActionRelease, 0, 20)

	events := drain(kb)
	require.Len(t, events, 2)
	assert.Equal(t, KeyA, events[0].Key)
	assert.Equal(t, 'a', events[0].Char)
	assert.Equal(t, KeyPress, events[0].State)
	assert.False(t, events[0].OutOfOrder)

	assert.Equal(t, KeyA, events[1].Key)
	assert.Equal(t, CharNone, events[1].Char)
	assert.Equal(t, KeyRelease, events[1].State)
	assert.False(t, events[1].OutOfOrder)
}

func TestReconcilerFlush(t *testing.T) {
	t.Run("pressed key without char", func(t *testing.T) {
		kb := newKeyboard(t, false)
		r := NewReconciler(kb)

		r.Key(NativeSlash, 0, ActionPress, 0, 5)
		r.Flush()

		events := drain(kb)
		require.Len(t, events, 1)
		assert.Equal(t, KeySlash, events[0].Key)
		assert.Equal(t, CharNone, events[0].Char)
		assert.Equal(t, KeyPress, events[0].State)
	})

	t.Run("released key without char", func(t *testing.T) {
		kb := newKeyboard(t, false)
		r := NewReconciler(kb)

		r.Key(NativeQ, 0, ActionPress, 0, 5)
		r.Key(NativeQ, 0, ActionRelease, 0, 6)
		r.Flush()

		events := drain(kb)
		require.Len(t, events, 2)
		assert.Equal(t, KeyPress, events[0].State)
		assert.Equal(t, KeyRelease, events[1].State)
		assert.Equal(t, CharNone, events[1].Char)
		assert.Equal(t, int64(5), events[0].Nanos)
		assert.Equal(t, int64(6), events[1].Nanos, "the release keeps its own timestamp")
	})

	t.Run("nothing staged", func(t *testing.T) {
		kb := newKeyboard(t, false)
		r := NewReconciler(kb)
		r.Flush()
		assert.Equal(t, 0, kb.NumEvents())
	})
}

func TestReconcilerControlChord(t *testing.T) {
	kb := newKeyboard(t, false)
	r := NewReconciler(kb)

	r.Key(NativeLeftControl, 0, ActionPress, ModControl, 1)
	r.Key(NativeC, 0, ActionPress, ModControl, 2)
	r.Char('c', 3) // swallowed
	r.Key(NativeC, 0, ActionRelease, ModControl, 4)

	events := drain(kb)
	require.Len(t, events, 3)
	assert.Equal(t, KeyLControl, events[0].Key)
	assert.Equal(t, CharNone, events[0].Char)

	assert.Equal(t, KeyC, events[1].Key)
	assert.Equal(t, rune(0x03), events[1].Char)
	assert.Equal(t, KeyPress, events[1].State)

	assert.Equal(t, KeyC, events[2].Key)
	assert.Equal(t, KeyRelease, events[2].State)
}

func TestReconcilerAltGrIsNotAChord(t *testing.T) {
	kb := newKeyboard(t, false)
	r := NewReconciler(kb)

	r.Key(NativeQ, 0, ActionPress, ModControl|ModAlt, 1)
	r.Char('@', 2)

	events := drain(kb)
	require.Len(t, events, 1)
	assert.Equal(t, KeyQ, events[0].Key)
	assert.Equal(t, '@', events[0].Char)
}

func TestReconcilerKeyCallbackResetsCancel(t *testing.T) {
	kb := newKeyboard(t, false)
	r := NewReconciler(kb)

	r.Key(NativeV, 0, ActionPress, ModControl, 1)
	r.Key(NativeLeftShift, 0, ActionPress, ModControl, 2)
	r.Char('x', 3)

	events := drain(kb)
	require.Len(t, events, 3)
	assert.Equal(t, KeyNone, events[2].Key)
	assert.Equal(t, 'x', events[2].Char)
}

func TestReconcilerControlCharacters(t *testing.T) {
	tests := []struct {
		name string
		key  NativeKey
		want int
		char rune
	}{
		{"enter", NativeEnter, KeyReturn, 0x0D},
		{"escape", NativeEscape, KeyEscape, 0x1B},
		{"tab", NativeTab, KeyTab, 0x09},
		{"backspace", NativeBackspace, KeyBack, 0x08},
		{"space", NativeSpace, KeySpace, CharNone},
		{"arrow", NativeUp, KeyUp, CharNone},
		{"function", NativeF5, KeyF5, CharNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := newKeyboard(t, false)
			r := NewReconciler(kb)

			r.Key(tt.key, 0, ActionPress, 0, 1)
			assert.False(t, r.Pending())

			events := drain(kb)
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].Key)
			assert.Equal(t, tt.char, events[0].Char)
		})
	}
}

func TestReconcilerKeylessChars(t *testing.T) {
	t.Run("ime output", func(t *testing.T) {
		kb := newKeyboard(t, false)
		r := NewReconciler(kb)

		r.Char('é', 1)
		r.Char('漢', 2)

		events := drain(kb)
		require.Len(t, events, 2)
		for i, want := range []rune{'é', '漢'} {
			assert.Equal(t, KeyNone, events[i].Key)
			assert.Equal(t, want, events[i].Char)
			assert.Equal(t, KeyPress, events[i].State)
		}
	})

	t.Run("supplementary plane codepoint", func(t *testing.T) {
		kb := newKeyboard(t, false)
		r := NewReconciler(kb)

		r.Char('😀', 1)

		events := drain(kb)
		require.Len(t, events, 2)
		assert.Equal(t, rune(0xD83D), events[0].Char)
		assert.Equal(t, rune(0xDE00), events[1].Char)
	})

	t.Run("supplementary codepoint joins a staged key", func(t *testing.T) {
		kb := newKeyboard(t, false)
		r := NewReconciler(kb)

		r.Key(NativeE, 0, ActionPress, 0, 1)
		r.Char('😀', 2)

		events := drain(kb)
		require.Len(t, events, 2)
		assert.Equal(t, KeyE, events[0].Key)
		assert.Equal(t, rune(0xD83D), events[0].Char)
		assert.Equal(t, KeyNone, events[1].Key)
		assert.Equal(t, rune(0xDE00), events[1].Char)
	})
}

func TestReconcilerStageOverwrite(t *testing.T) {
	kb := newKeyboard(t, false)
	r := NewReconciler(kb)

	r.Key(NativeA, 0, ActionPress, 0, 1)
	r.Key(NativeB, 0, ActionPress, 0, 2)
	r.Char('b', 3)

	events := drain(kb)
	require.Len(t, events, 1)
	assert.Equal(t, KeyB, events[0].Key)
	assert.Equal(t, 'b', events[0].Char)
}

func TestReconcilerReleaseOfOtherKey(t *testing.T) {
	kb := newKeyboard(t, false)
	r := NewReconciler(kb)

	r.Key(NativeA, 0, ActionPress, 0, 1)
	r.Key(NativeS, 0, ActionRelease, 0, 2)
	r.Char('a', 3)

	events := drain(kb)
	require.Len(t, events, 2)
	assert.Equal(t, KeyS, events[0].Key)
	assert.Equal(t, KeyRelease, events[0].State)
	assert.Equal(t, KeyA, events[1].Key)
	assert.False(t, events[1].OutOfOrder)
}

func TestReconcilerRepeat(t *testing.T) {
	press := func(r *Reconciler) {
		r.Key(NativeW, 0, ActionPress, 0, 1)
		r.Char('w', 2)
		r.Key(NativeW, 0, ActionRepeat, 0, 3)
		r.Char('w', 4)
		r.Key(NativeDown, 0, ActionRepeat, 0, 5)
	}

	t.Run("disabled", func(t *testing.T) {
		kb := newKeyboard(t, false)
		press(NewReconciler(kb))

		events := drain(kb)
		require.Len(t, events, 1)
		assert.Equal(t, KeyPress, events[0].State)
	})

	t.Run("enabled", func(t *testing.T) {
		kb := newKeyboard(t, true)
		press(NewReconciler(kb))

		events := drain(kb)
		require.Len(t, events, 3)
		assert.Equal(t, KeyRepeat, events[1].State)
		assert.Equal(t, 'w', events[1].Char)
		assert.Equal(t, KeyDown, events[2].Key)
		assert.Equal(t, KeyRepeat, events[2].State)
	})
}
