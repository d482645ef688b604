package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpeaker struct {
	rate    beep.SampleRate
	buffer  int
	played  []beep.Streamer
	closed  int
	locked  int
	initErr error
}

func installFakeSpeaker(t *testing.T) *fakeSpeaker {
	t.Helper()
	fs := &fakeSpeaker{}
	oInit, oPlay, oClear, oClose, oLock, oUnlock := speakerInit, speakerPlay, speakerClear, speakerClose, speakerLock, speakerUnlock
	t.Cleanup(func() {
		speakerInit, speakerPlay, speakerClear, speakerClose, speakerLock, speakerUnlock = oInit, oPlay, oClear, oClose, oLock, oUnlock
	})

	speakerInit = func(sr beep.SampleRate, bufferSize int) error {
		if fs.initErr != nil {
			return fs.initErr
		}
		fs.rate, fs.buffer = sr, bufferSize
		return nil
	}
	speakerPlay = func(s ...beep.Streamer) { fs.played = append(fs.played, s...) }
	speakerClear = func() {}
	speakerClose = func() { fs.closed++ }
	speakerLock = func() { fs.locked++ }
	speakerUnlock = func() {}
	return fs
}

func TestCreateOpensSpeaker(t *testing.T) {
	fs := installFakeSpeaker(t)
	d := NewDevice()

	require.NoError(t, d.Create(DefaultOptions()))
	assert.True(t, d.IsCreated())
	assert.True(t, d.IsOpen())
	assert.Equal(t, beep.SampleRate(44100), fs.rate)
	assert.Equal(t, beep.SampleRate(44100).N(time.Second/60), fs.buffer, "one 60 Hz refresh period")
	require.Len(t, fs.played, 1)
	assert.Same(t, d.Mixer(), fs.played[0])
	assert.Equal(t, beep.SampleRate(44100), d.SampleRate())

	assert.ErrorIs(t, d.Create(DefaultOptions()), ErrAlreadyCreated)

	require.NoError(t, d.Play(NewTone(d.SampleRate(), 440, 10*time.Millisecond)))
	assert.Equal(t, 1, fs.locked)
	assert.Equal(t, 1, d.Mixer().Len())

	d.Destroy()
	assert.False(t, d.IsCreated())
	assert.Equal(t, 1, fs.closed)
	assert.Equal(t, 0, d.Mixer().Len())
	assert.Equal(t, beep.SampleRate(0), d.SampleRate(), "closed output reports no rate")

	d.Destroy()
	assert.Equal(t, 1, fs.closed, "second destroy is a no-op")
}

func TestCreateWithoutOpening(t *testing.T) {
	fs := installFakeSpeaker(t)
	d := NewDevice()

	assert.ErrorIs(t, d.Play(NewTone(44100, 440, time.Millisecond)), ErrNotCreated)

	require.NoError(t, d.Create(Options{OpenDevice: false}))
	assert.True(t, d.IsCreated())
	assert.False(t, d.IsOpen())
	assert.Empty(t, fs.played)

	require.NoError(t, d.Play(NewTone(44100, 440, time.Millisecond)))
	assert.Equal(t, 0, fs.locked)

	d.Destroy()
	assert.Equal(t, 0, fs.closed)
}

func TestCreateErrors(t *testing.T) {
	fs := installFakeSpeaker(t)
	d := NewDevice()

	assert.ErrorIs(t, d.Create(Options{OpenDevice: true}), ErrInvalidFrequency)
	assert.False(t, d.IsCreated())

	fs.initErr = errors.New("no sound card")
	err := d.Create(DefaultOptions())
	assert.ErrorContains(t, err, "no sound card")
	assert.False(t, d.IsCreated())

	fs.initErr = nil
	require.NoError(t, d.Create(Options{Frequency: 48000, OpenDevice: true}))
	assert.Equal(t, beep.SampleRate(48000).N(time.Second/60), fs.buffer, "refresh defaults to 60")
}

func TestToneGenerator(t *testing.T) {
	sr := beep.SampleRate(1000)
	tone := NewTone(sr, 100, 50*time.Millisecond)

	buf := make([][2]float64, 32)
	n, ok := tone.Stream(buf)
	assert.Equal(t, 32, n)
	assert.True(t, ok)
	assert.Equal(t, 0.0, buf[0][0], "fade starts silent")
	assert.Equal(t, buf[10][0], buf[10][1])

	n, ok = tone.Stream(buf)
	assert.Equal(t, 18, n)
	assert.True(t, ok)

	n, ok = tone.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
	assert.NoError(t, tone.Err())
}
