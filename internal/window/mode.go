package window

import "fmt"

// DisplayMode describes a video mode
type DisplayMode struct {
	Width        int
	Height       int
	BitsPerPixel int
	Frequency    int
	// FullscreenCapable is true for modes reported by a monitor
	FullscreenCapable bool
}

// NewDisplayMode creates a windowed mode of the given size
func NewDisplayMode(width, height int) DisplayMode {
	return DisplayMode{Width: width, Height: height}
}

// Equal compares the size, depth and refresh rate of two modes
func (m DisplayMode) Equal(o DisplayMode) bool {
	return m.Width == o.Width && m.Height == o.Height &&
		m.BitsPerPixel == o.BitsPerPixel && m.Frequency == o.Frequency
}

func (m DisplayMode) String() string {
	return fmt.Sprintf("%d x %d x %d @%dHz", m.Width, m.Height, m.BitsPerPixel, m.Frequency)
}

// Centered returns the origin that centers a mode on a desktop mode
func Centered(desktop, mode DisplayMode) (x, y int) {
	return (desktop.Width - mode.Width) / 2, (desktop.Height - mode.Height) / 2
}
