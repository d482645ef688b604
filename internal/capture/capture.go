// Package capture records raw native input events to a compressed msgpack
// stream and reads them back for replay.
package capture

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/glcompat/glcompat/internal/input"
)

const (
	magic = "glcompat-capture"
	// FormatVersion is bumped when RawEvent changes incompatibly
	FormatVersion = 1
)

// ErrNotCapture is returned when a stream does not start with a capture header
var ErrNotCapture = errors.New("not a glcompat capture")

// Header describes the window a capture was recorded in
type Header struct {
	Magic    string    `msgpack:"magic"`
	Version  int       `msgpack:"version"`
	Width    int       `msgpack:"width"`
	Height   int       `msgpack:"height"`
	Recorded time.Time `msgpack:"recorded"`
}

// NewHeader creates a header for a window of the given size
func NewHeader(width, height int) Header {
	return Header{
		Magic:    magic,
		Version:  FormatVersion,
		Width:    width,
		Height:   height,
		Recorded: time.Now().UTC(),
	}
}

// Writer appends raw events to a capture stream
type Writer struct {
	zw     *zstd.Encoder
	enc    *msgpack.Encoder
	count  int
	frames int
}

// NewWriter writes the header to w and returns a writer for the events
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}
	enc := msgpack.NewEncoder(zw)
	if err := enc.Encode(&h); err != nil {
		zw.Close()
		return nil, fmt.Errorf("failed to write capture header: %w", err)
	}
	return &Writer{zw: zw, enc: enc}, nil
}

// Write appends one event
func (w *Writer) Write(ev input.RawEvent) error {
	if err := w.enc.Encode(&ev); err != nil {
		return fmt.Errorf("failed to write event %d: %w", w.count, err)
	}
	w.count++
	return nil
}

// EndFrame writes a frame boundary. Replay ends a pump frame at each one so
// pending key presses resolve exactly where they did while recording.
func (w *Writer) EndFrame() error {
	if err := w.enc.Encode(&input.RawEvent{}); err != nil {
		return fmt.Errorf("failed to write frame %d: %w", w.frames, err)
	}
	w.frames++
	return nil
}

// Count returns the number of events written
func (w *Writer) Count() int {
	return w.count
}

// Frames returns the number of frame boundaries written
func (w *Writer) Frames() int {
	return w.frames
}

// Close flushes the stream. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}

// Reader reads events back from a capture stream
type Reader struct {
	zr     *zstd.Decoder
	dec    *msgpack.Decoder
	header Header
}

// NewReader reads and checks the header of the capture in r
func NewReader(r io.Reader) (*Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	dec := msgpack.NewDecoder(zr)

	var h Header
	if err := dec.Decode(&h); err != nil {
		zr.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotCapture, err)
	}
	if h.Magic != magic {
		zr.Close()
		return nil, ErrNotCapture
	}
	if h.Version != FormatVersion {
		zr.Close()
		return nil, fmt.Errorf("unsupported capture version %d", h.Version)
	}
	return &Reader{zr: zr, dec: dec, header: h}, nil
}

func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next record, or io.EOF at the end of the capture. A
// record with a zero Kind is a frame boundary.
func (r *Reader) Next() (input.RawEvent, error) {
	var ev input.RawEvent
	if err := r.dec.Decode(&ev); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ev, io.EOF
		}
		return ev, fmt.Errorf("failed to read event: %w", err)
	}
	return ev, nil
}

// Close releases the decompressor
func (r *Reader) Close() {
	r.zr.Close()
}

// Replay feeds every event of r through p, ending a pump frame at each frame
// boundary and once more if the capture ends mid-frame. onFrame, if not nil,
// runs after every frame so the caller can drain the input buffers. It returns
// the number of events and frames replayed.
func Replay(r *Reader, p *input.Pump, onFrame func()) (events, frames int, err error) {
	pending := false
	endFrame := func() {
		p.EndFrame()
		frames++
		pending = false
		if onFrame != nil {
			onFrame()
		}
	}

	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return events, frames, err
		}

		if ev.Kind == 0 {
			endFrame()
			continue
		}
		p.Dispatch(ev)
		events++
		pending = true
	}

	if pending {
		endFrame()
	}
	return events, frames, nil
}
