// Package audio provides the legacy audio device on top of the beep speaker.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/glcompat/glcompat/internal/logger"
)

var (
	// ErrAlreadyCreated is returned when Create is called on a live device
	ErrAlreadyCreated = errors.New("only one audio device may be created at a time")
	// ErrNotCreated is returned when playing on a device that was not created
	ErrNotCreated = errors.New("audio device not created")
	// ErrInvalidFrequency is returned for a non-positive output frequency
	ErrInvalidFrequency = errors.New("audio frequency must be positive")
)

// Output hooks, replaced in tests
var (
	speakerInit   = speaker.Init
	speakerPlay   = speaker.Play
	speakerClear  = speaker.Clear
	speakerClose  = speaker.Close
	speakerLock   = speaker.Lock
	speakerUnlock = speaker.Unlock
)

// Options configures Create
type Options struct {
	// Frequency is the output sample rate in Hz
	Frequency int
	// Refresh is the number of mixer updates per second; the output buffer
	// holds one refresh period.
	Refresh int
	// Synchronized has no effect; the speaker always mixes on its own
	// goroutine.
	Synchronized bool
	// OpenDevice can be false to create the device without opening the
	// output.
	OpenDevice bool
}

// DefaultOptions matches the legacy no-argument create
func DefaultOptions() Options {
	return Options{Frequency: 44100, Refresh: 60, OpenDevice: true}
}

// Device is the audio output. All streamers are mixed into one beep.Mixer.
type Device struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	created bool
	opened  bool
}

// NewDevice creates a device that is not yet created
func NewDevice() *Device {
	return &Device{mixer: &beep.Mixer{}}
}

// Create opens the output with opts
func (d *Device) Create(opts Options) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.created {
		return ErrAlreadyCreated
	}
	if !opts.OpenDevice {
		logger.Debug("Audio device created without opening output")
		d.created = true
		return nil
	}
	if opts.Frequency <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidFrequency, opts.Frequency)
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = 60
	}
	if opts.Synchronized {
		logger.Debug("Synchronized audio contexts are not supported, ignoring")
	}

	rate := beep.SampleRate(opts.Frequency)
	bufferSize := rate.N(time.Second / time.Duration(refresh))
	if err := speakerInit(rate, bufferSize); err != nil {
		return fmt.Errorf("failed to open audio output: %w", err)
	}
	speakerPlay(d.mixer)

	logger.Infof("Audio output opened at %d Hz (%d samples per buffer)", opts.Frequency, bufferSize)
	d.rate = rate
	d.created = true
	d.opened = true
	return nil
}

// Destroy stops playback and closes the output. It is safe to call on a
// device that was never created.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.created {
		return
	}
	if d.opened {
		speakerClear()
		speakerClose()
	}
	d.mixer = &beep.Mixer{}
	d.rate = 0
	d.created = false
	d.opened = false
	logger.Debug("Audio device destroyed")
}

func (d *Device) IsCreated() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created
}

// IsOpen reports whether the output is open
func (d *Device) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened
}

// SampleRate returns the output rate, or 0 when the output is closed
func (d *Device) SampleRate() beep.SampleRate {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rate
}

// Mixer returns the mixer all playback goes through
func (d *Device) Mixer() *beep.Mixer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mixer
}

// Play adds s to the mixer. Without an open output the streamer is queued
// but never consumed.
func (d *Device) Play(s beep.Streamer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.created {
		return ErrNotCreated
	}
	if d.opened {
		speakerLock()
		defer speakerUnlock()
	}
	d.mixer.Add(s)
	return nil
}
