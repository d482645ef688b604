package capture

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glcompat/glcompat/internal/input"
)

func record(t *testing.T, events []input.RawEvent) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, NewHeader(854, 480))
	require.NoError(t, err)
	for _, ev := range events {
		require.NoError(t, w.Write(ev))
	}
	assert.Equal(t, len(events), w.Count())
	require.NoError(t, w.Close())
	return &buf
}

func TestReplayThroughPump(t *testing.T) {
	buf := record(t, []input.RawEvent{
		{Kind: input.EventKey, Key: input.NativeA, Action: input.ActionPress, Nanos: 100},
		{Kind: input.EventKey, Key: input.NativeA, Action: input.ActionRelease, Nanos: 150},
		{Kind: input.EventChar, Char: 'a', Nanos: 160},
		{Kind: input.EventScroll, Y: -1, Nanos: 200},
	})

	r, err := NewReader(buf)
	require.NoError(t, err)
	defer r.Close()

	h := r.Header()
	assert.Equal(t, FormatVersion, h.Version)
	assert.Equal(t, 854, h.Width)
	assert.Equal(t, 480, h.Height)
	assert.False(t, h.Recorded.IsZero())

	kb, err := input.NewKeyboard(16, false)
	require.NoError(t, err)
	mouse, err := input.NewMouse(16, input.NewHeadlessSurface(h.Width, h.Height), nil)
	require.NoError(t, err)
	pump := input.NewPump(kb, mouse, nil)

	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		pump.Dispatch(ev)
	}
	pump.EndFrame()

	require.True(t, kb.Next())
	assert.Equal(t, input.KeyA, kb.EventKey())
	assert.Equal(t, 'a', kb.EventCharacter())
	assert.True(t, kb.EventKeyState())
	assert.Equal(t, int64(100), kb.EventNanoseconds())
	require.True(t, kb.Next())
	assert.False(t, kb.EventKeyState())
	assert.False(t, kb.Next())

	require.True(t, mouse.Next())
	assert.Equal(t, -1, mouse.EventDWheel())
}

func TestEmptyCapture(t *testing.T) {
	r, err := NewReader(record(t, nil))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestNotACapture(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("definitely not zstd")))
	assert.Error(t, err)
}

func TestReplayHonoursFrameBoundaries(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, NewHeader(854, 480))
	require.NoError(t, err)

	// The char for A only arrives in the frame after its press
	require.NoError(t, w.Write(input.RawEvent{Kind: input.EventKey, Key: input.NativeA, Action: input.ActionPress, Nanos: 10}))
	require.NoError(t, w.EndFrame())
	require.NoError(t, w.Write(input.RawEvent{Kind: input.EventChar, Char: 'a', Nanos: 20}))
	require.NoError(t, w.Write(input.RawEvent{Kind: input.EventKey, Key: input.NativeA, Action: input.ActionRelease, Nanos: 30}))
	assert.Equal(t, 3, w.Count())
	assert.Equal(t, 1, w.Frames())
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	kb, err := input.NewKeyboard(16, false)
	require.NoError(t, err)
	var got []input.KeyEvent
	var perFrame []int
	events, frames, err := Replay(r, input.NewPump(kb, nil, nil), func() {
		n := 0
		for kb.Next() {
			got = append(got, kb.Event())
			n++
		}
		perFrame = append(perFrame, n)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, events)
	assert.Equal(t, 2, frames)
	assert.Equal(t, []int{1, 2}, perFrame)
	require.Len(t, got, 3)

	assert.Equal(t, input.KeyA, got[0].Key)
	assert.Equal(t, input.CharNone, got[0].Char)
	assert.Equal(t, input.KeyPress, got[0].State)

	assert.Equal(t, input.KeyNone, got[1].Key)
	assert.Equal(t, 'a', got[1].Char)

	assert.Equal(t, input.KeyA, got[2].Key)
	assert.Equal(t, input.KeyRelease, got[2].State)
}
