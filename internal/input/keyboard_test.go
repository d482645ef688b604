package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glcompat/glcompat/internal/ring"
)

type fakeKeys map[NativeKey]bool

func (f fakeKeys) KeyDown(k NativeKey) bool { return f[k] }

func TestNewKeyboard(t *testing.T) {
	t.Run("invalid capacity", func(t *testing.T) {
		kb, err := NewKeyboard(0, false)
		assert.Nil(t, kb)
		assert.ErrorIs(t, err, ring.ErrInvalidCapacity)
	})

	t.Run("initial event is a keyless release", func(t *testing.T) {
		kb := newKeyboard(t, false)
		assert.True(t, kb.IsCreated())
		assert.Equal(t, 0, kb.NumEvents())
		assert.False(t, kb.Next())
		assert.Equal(t, KeyNone, kb.EventKey())
		assert.Equal(t, CharNone, kb.EventCharacter())
		assert.False(t, kb.EventKeyState())
		assert.Equal(t, int64(0), kb.EventNanoseconds())
		assert.False(t, kb.IsRepeatEvent())
	})
}

func TestKeyboardAccessorsStableBetweenNext(t *testing.T) {
	kb := newKeyboard(t, true)
	kb.Enqueue(KeyEvent{Key: KeyW, Char: 'w', State: KeyRepeat, Nanos: 42})
	kb.Enqueue(KeyEvent{Key: KeyW, State: KeyRelease, Nanos: 43})

	require.True(t, kb.Next())
	for i := 0; i < 3; i++ {
		assert.Equal(t, KeyW, kb.EventKey())
		assert.Equal(t, 'w', kb.EventCharacter())
		assert.True(t, kb.EventKeyState())
		assert.True(t, kb.IsRepeatEvent())
		assert.Equal(t, int64(42), kb.EventNanoseconds())
	}

	require.True(t, kb.Next())
	assert.False(t, kb.EventKeyState())
	assert.False(t, kb.Next())
	assert.Equal(t, int64(43), kb.EventNanoseconds(), "empty Next keeps the current event")
}

func TestKeyboardOverflowKeepsNewest(t *testing.T) {
	kb, err := NewKeyboard(4, false)
	require.NoError(t, err)

	for i := 1; i <= 6; i++ {
		kb.Enqueue(KeyEvent{Key: KeyA, State: KeyPress, Nanos: int64(i)})
	}
	assert.Equal(t, 4, kb.NumEvents())
	assert.Equal(t, uint64(2), kb.Dropped())

	var got []int64
	for kb.Next() {
		got = append(got, kb.EventNanoseconds())
	}
	assert.Equal(t, []int64{3, 4, 5, 6}, got)
}

func TestKeyboardRepeatToggle(t *testing.T) {
	kb := newKeyboard(t, false)
	assert.False(t, kb.AreRepeatEventsEnabled())

	kb.Enqueue(KeyEvent{Key: KeyD, State: KeyRepeat})
	assert.Equal(t, 0, kb.NumEvents())

	kb.EnableRepeatEvents(true)
	assert.True(t, kb.AreRepeatEventsEnabled())
	kb.Enqueue(KeyEvent{Key: KeyD, State: KeyRepeat})
	assert.Equal(t, 1, kb.NumEvents())
}

func TestKeyboardIsKeyDown(t *testing.T) {
	t.Run("tracked from events", func(t *testing.T) {
		kb := newKeyboard(t, false)
		kb.Enqueue(KeyEvent{Key: KeySpace, State: KeyPress})
		assert.True(t, kb.IsKeyDown(KeySpace))

		// A filtered repeat still counts as held.
		kb.Enqueue(KeyEvent{Key: KeyLShift, State: KeyRepeat})
		assert.True(t, kb.IsKeyDown(KeyLShift))

		kb.Enqueue(KeyEvent{Key: KeySpace, State: KeyRelease})
		assert.False(t, kb.IsKeyDown(KeySpace))
		assert.False(t, kb.IsKeyDown(KeyNone))
		assert.False(t, kb.IsKeyDown(KeyboardSize))
	})

	t.Run("live source", func(t *testing.T) {
		kb := newKeyboard(t, false)
		kb.SetKeySource(fakeKeys{NativeLeftShift: true})
		assert.True(t, kb.IsKeyDown(KeyLShift))
		assert.False(t, kb.IsKeyDown(KeyRShift))
		assert.False(t, kb.IsKeyDown(KeyKana), "no native equivalent")
	})
}

func TestKeyboardLifecycle(t *testing.T) {
	kb := newKeyboard(t, false)
	kb.Destroy()
	assert.False(t, kb.IsCreated())
	require.NoError(t, kb.Create())
	assert.True(t, kb.IsCreated())
	kb.Poll()
}

func TestKeyboardConcurrentEnqueueAndRead(t *testing.T) {
	const total = 2000
	kb, err := NewKeyboard(2*total, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			kb.Enqueue(KeyEvent{Key: KeyA, State: KeyPress, Nanos: int64(i)})
		}
	}()

	read := 0
	last := int64(-1)
	for read < total {
		if !kb.Next() {
			continue
		}
		read++
		n := kb.EventNanoseconds()
		assert.Greater(t, n, last, "events stay in order")
		last = n
	}
	wg.Wait()
	assert.False(t, kb.Next())
	assert.Equal(t, uint64(0), kb.Dropped())
}
