package input

import (
	"errors"

	"github.com/glcompat/glcompat/internal/logger"
)

// ErrCursorUnsupported is returned for native cursor operations
var ErrCursorUnsupported = errors.New("native cursors are not supported")

// Cursor capability bits reported by CursorCapabilities
const (
	CursorOneBitTransparency = 1 << iota
	CursorTranslucency
	CursorAnimation
)

// Cursor stands in for a legacy native cursor. None can be created.
type Cursor struct{}

// NewCursor always fails with ErrCursorUnsupported
func NewCursor(width, height, xHotspot, yHotspot, numImages int, images []int32, delays []int32) (*Cursor, error) {
	logger.Warnf("Cursor creation (%dx%d, %d images) is not supported", width, height, numImages)
	return nil, ErrCursorUnsupported
}

func (c *Cursor) Destroy() {}

func MinCursorSize() int { return 0 }

func MaxCursorSize() int { return 0 }

func CursorCapabilities() int { return 0 }

// SetNativeCursor accepts only nil, which selects the default cursor
func (m *Mouse) SetNativeCursor(c *Cursor) (*Cursor, error) {
	if c != nil {
		return nil, ErrCursorUnsupported
	}
	return nil, nil
}

func (m *Mouse) NativeCursor() *Cursor {
	return nil
}
