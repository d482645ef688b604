package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glcompat/glcompat/internal/input"
)

func TestStateResizeLatch(t *testing.T) {
	s := NewState(854, 480)
	assert.False(t, s.Resized())

	s.Apply(input.RawEvent{Kind: input.EventSize, W: 1024, H: 768})
	w, h := s.Size()
	assert.Equal(t, 854, w, "size is not visible before Commit")
	assert.Equal(t, 480, h)

	s.Commit()
	assert.True(t, s.Resized())
	w, h = s.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	s.Commit()
	assert.False(t, s.Resized(), "resize is reported for one frame")
}

func TestStateCallbacks(t *testing.T) {
	s := NewState(100, 100)
	assert.True(t, s.Visible())
	assert.False(t, s.Focused())

	s.Apply(input.RawEvent{Kind: input.EventFocus, Flag: true})
	s.Apply(input.RawEvent{Kind: input.EventIconify, Flag: true})
	s.Apply(input.RawEvent{Kind: input.EventPos, W: 30, H: 40})
	s.Apply(input.RawEvent{Kind: input.EventRefresh})
	s.Apply(input.RawEvent{Kind: input.EventFramebufferSize, W: 200, H: 200})
	s.Apply(input.RawEvent{Kind: input.EventKey})

	assert.True(t, s.Focused())
	assert.False(t, s.Visible())
	x, y := s.Pos()
	assert.Equal(t, 30, x)
	assert.Equal(t, 40, y)
	assert.True(t, s.Dirty())
	fw, fh := s.FramebufferSize()
	assert.Equal(t, 200, fw)
	assert.Equal(t, 200, fh)

	s.ClearDirty()
	assert.False(t, s.Dirty())

	s.Apply(input.RawEvent{Kind: input.EventIconify, Flag: false})
	assert.True(t, s.Visible())
}

func TestStateAsPumpSink(t *testing.T) {
	kb, err := input.NewKeyboard(8, false)
	assert.NoError(t, err)
	s := NewState(10, 10)
	pump := input.NewPump(kb, nil, s)

	pump.Intake().Push(input.RawEvent{Kind: input.EventSize, W: 20, H: 30})
	pump.Process()
	assert.True(t, s.Resized())

	pump.Process()
	assert.False(t, s.Resized())
}
