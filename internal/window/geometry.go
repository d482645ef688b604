package window

// Rect is a window area in screen coordinates
type Rect struct {
	X, Y          int
	Width, Height int
}

// BorderlessHeight returns the height to request for a borderless fullscreen
// window. Some Windows drivers switch to exclusive mode when a borderless
// window exactly covers the monitor, so the fix adds one pixel.
func BorderlessHeight(height int, fix bool) int {
	if fix {
		return height + 1
	}
	return height
}

// Fullscreen tracks the windowed geometry to restore after fullscreen
type Fullscreen struct {
	active bool
	saved  Rect
}

// Active reports whether fullscreen is on
func (f *Fullscreen) Active() bool {
	return f.active
}

// Enter switches to fullscreen. The windowed geometry is saved only when
// coming from windowed mode, so repeated calls keep the original rectangle.
func (f *Fullscreen) Enter(current Rect) {
	if !f.active {
		f.saved = current
	}
	f.active = true
}

// Leave switches back to windowed mode and returns the geometry to restore
func (f *Fullscreen) Leave() Rect {
	f.active = false
	return f.saved
}

// Saved returns the last saved windowed geometry
func (f *Fullscreen) Saved() Rect {
	return f.saved
}
