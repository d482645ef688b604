package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	applied []RawEvent
	commits int
}

func (s *recordingSink) Apply(ev RawEvent) { s.applied = append(s.applied, ev) }
func (s *recordingSink) Commit()           { s.commits++ }

func TestIntakeDrainOrder(t *testing.T) {
	q := NewIntake()
	for i := 0; i < 5; i++ {
		q.Push(RawEvent{Kind: EventChar, Char: rune('a' + i)})
	}
	assert.Equal(t, 5, q.Len())

	got := q.Drain()
	require.Len(t, got, 5)
	for i, ev := range got {
		assert.Equal(t, rune('a'+i), ev.Char)
	}
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestIntakeConcurrentPush(t *testing.T) {
	q := NewIntake()
	const producers, perProducer = 4, 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(RawEvent{Kind: EventScroll})
			}
		}()
	}

	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			total += len(q.Drain())
			assert.Equal(t, producers*perProducer, total)
			return
		default:
			total += len(q.Drain())
		}
	}
}

func TestPumpProcess(t *testing.T) {
	kb := newKeyboard(t, false)
	mouse, _ := newMouse(t)
	sink := &recordingSink{}
	pump := NewPump(kb, mouse, sink)

	var tapped []EventKind
	pump.SetTap(func(ev RawEvent) { tapped = append(tapped, ev.Kind) })

	in := pump.Intake()
	in.Push(RawEvent{Kind: EventKey, Key: NativeH, Action: ActionPress, Nanos: 1})
	in.Push(RawEvent{Kind: EventKey, Key: NativeH, Action: ActionRelease, Nanos: 2})
	in.Push(RawEvent{Kind: EventCursorPos, X: 10, Y: 20})
	in.Push(RawEvent{Kind: EventMouseButton, Key: 1, Action: ActionPress})
	in.Push(RawEvent{Kind: EventScroll, Y: 2})
	in.Push(RawEvent{Kind: EventFocus, Flag: true})
	in.Push(RawEvent{Kind: EventSize, W: 640, H: 480})

	assert.Equal(t, 7, pump.Process())
	assert.Len(t, tapped, 7)
	assert.Equal(t, 1, sink.commits)
	require.Len(t, sink.applied, 2)
	assert.Equal(t, EventFocus, sink.applied[0].Kind)
	assert.Equal(t, EventSize, sink.applied[1].Kind)

	// The H press never got a char, so the frame end resolves it.
	events := drain(kb)
	require.Len(t, events, 2)
	assert.Equal(t, KeyH, events[0].Key)
	assert.Equal(t, KeyPress, events[0].State)
	assert.Equal(t, KeyRelease, events[1].State)

	require.True(t, mouse.Next())
	assert.Equal(t, 10, mouse.EventX())
	require.True(t, mouse.Next())
	assert.Equal(t, 1, mouse.EventButton())
	assert.True(t, mouse.EventButtonState())
	require.True(t, mouse.Next())
	assert.Equal(t, 2, mouse.EventDWheel())
	assert.False(t, mouse.Next())

	assert.Equal(t, 10, mouse.X(), "Poll latched the position")
	assert.Equal(t, 580, mouse.Y())

	assert.Equal(t, 0, pump.Process())
	assert.Equal(t, 2, sink.commits)
}

func TestPumpMouseTimestampsFollowNativeEvents(t *testing.T) {
	kb := newKeyboard(t, false)
	mouse, err := NewMouse(DefaultMouseCapacity, NewHeadlessSurface(800, 600), func() int64 { return 999 })
	require.NoError(t, err)
	pump := NewPump(kb, mouse, nil)

	in := pump.Intake()
	in.Push(RawEvent{Kind: EventCursorPos, X: 5, Y: 5, Nanos: 111})
	in.Push(RawEvent{Kind: EventMouseButton, Key: 0, Action: ActionPress, Nanos: 222})
	in.Push(RawEvent{Kind: EventScroll, Y: 1, Nanos: 333})
	pump.Process()

	for _, want := range []int64{111, 222, 333} {
		require.True(t, mouse.Next())
		assert.Equal(t, want, mouse.EventNanoseconds())
	}
	assert.False(t, mouse.Next())
}

func TestPumpGrabReleaseWarp(t *testing.T) {
	t.Run("echo is skipped", func(t *testing.T) {
		mouse, _ := newMouse(t)
		pump := NewPump(newKeyboard(t, false), mouse, nil)
		mouse.SetGrabbed(true)
		mouse.SetGrabbed(false)
		require.True(t, mouse.Next())

		pump.Intake().Push(RawEvent{Kind: EventCursorPos, X: 400, Y: 300, Nanos: 5})
		pump.Intake().Push(RawEvent{Kind: EventCursorPos, X: 410, Y: 300, Nanos: 6})
		pump.Process()

		require.True(t, mouse.Next())
		assert.Equal(t, 410, mouse.EventX())
		assert.False(t, mouse.Next())
	})

	t.Run("skip lapses when no echo arrives", func(t *testing.T) {
		mouse, _ := newMouse(t)
		pump := NewPump(newKeyboard(t, false), mouse, nil)
		mouse.SetGrabbed(true)
		mouse.SetGrabbed(false)
		require.True(t, mouse.Next())

		pump.Process()
		pump.Intake().Push(RawEvent{Kind: EventCursorPos, X: 123, Y: 456, Nanos: 7})
		pump.Process()

		require.True(t, mouse.Next())
		assert.Equal(t, 123, mouse.EventX())
		assert.Equal(t, int64(7), mouse.EventNanoseconds())
	})
}

func TestPumpWithoutMouseOrWindow(t *testing.T) {
	kb := newKeyboard(t, false)
	pump := NewPump(kb, nil, nil)

	pump.Dispatch(RawEvent{Kind: EventCursorPos, X: 1, Y: 1})
	pump.Dispatch(RawEvent{Kind: EventRefresh})
	pump.Dispatch(RawEvent{Kind: EventChar, Char: 'z'})
	pump.EndFrame()

	events := drain(kb)
	require.Len(t, events, 1)
	assert.Equal(t, 'z', events[0].Char)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "key", EventKey.String())
	assert.Equal(t, "framebuffer_size", EventFramebufferSize.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}
