package display

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/window"
)

func (d *Display) Title() string { return d.title }

func (d *Display) SetTitle(title string) {
	d.title = title
	if d.IsCreated() {
		d.win.SetTitle(title)
	}
}

func (d *Display) IsResizable() bool { return d.resizable }

func (d *Display) SetResizable(resizable bool) {
	d.resizable = resizable
	if d.IsCreated() {
		d.win.SetAttrib(glfw.Resizable, boolHint(resizable))
	}
}

// SetLocation moves a windowed display. It is ignored in fullscreen.
func (d *Display) SetLocation(x, y int) {
	if d.fullscreen.Active() || !d.IsCreated() {
		return
	}
	d.win.SetPos(x, y)
}

// SetSize resizes a windowed display. It is ignored in fullscreen.
func (d *Display) SetSize(width, height int) {
	if !d.IsCreated() || d.fullscreen.Active() {
		return
	}
	d.win.SetSize(width, height)
}

func (d *Display) SetVisible(visible bool) {
	if !d.IsCreated() {
		return
	}
	if visible {
		d.win.Show()
	} else {
		d.win.Hide()
	}
}

func (d *Display) IsFullscreen() bool {
	if !d.IsCreated() {
		return d.wantFullscreen
	}
	return d.fullscreen.Active()
}

// SetFullscreen switches between windowed and fullscreen. Before Create it
// only records the wish.
func (d *Display) SetFullscreen(fullscreen bool) error {
	if !d.IsCreated() {
		d.wantFullscreen = fullscreen
		return nil
	}

	if !fullscreen {
		if !d.fullscreen.Active() {
			return nil
		}
		r := d.fullscreen.Leave()
		d.win.SetMonitor(nil, r.X, r.Y, r.Width, r.Height, 0)
		d.win.SetAttrib(glfw.Decorated, glfw.True)
		d.pump.Intake().Push(sizeEvent(r.Width, r.Height, d.sys.NanoTime()))
		d.wantFullscreen = false
		return nil
	}

	layout, err := window.NewLayout(monitorSource{})
	if err != nil {
		return fmt.Errorf("failed to enter fullscreen: %w", err)
	}
	x, y := d.state.Pos()
	w, h := d.state.Size()
	d.fullscreen.Enter(window.Rect{X: x, Y: y, Width: w, Height: h})

	target := layout.ForWindow(x, y)
	monitor := nativeMonitor(target)
	if monitor == nil {
		monitor = glfw.GetPrimaryMonitor()
	}
	mode := target.Mode
	if d.cfg.GL.FullscreenBorderless {
		d.win.SetAttrib(glfw.Decorated, glfw.False)
		height := window.BorderlessHeight(mode.Height, d.cfg.GL.BorderlessWindowsFix)
		d.win.SetMonitor(monitor, 0, 0, mode.Width, height, mode.Frequency)
	} else {
		d.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.Frequency)
	}
	logger.Debugf("Fullscreen on %s (%s)", target.Name, mode)
	d.wantFullscreen = true
	return nil
}

// SetIcon sets the window icons from square RGBA buffers. Before Create the
// icons are kept and applied on creation.
func (d *Display) SetIcon(icons [][]byte) error {
	if len(icons) == 0 {
		logger.Debug("SetIcon called without icons, ignoring")
		return nil
	}
	images, err := window.IconImages(icons)
	if err != nil {
		return err
	}
	d.icons = images
	if d.IsCreated() {
		d.win.SetIcon(images)
	}
	return nil
}

// SetIconImages is SetIcon for already decoded images
func (d *Display) SetIconImages(images []image.Image) {
	d.icons = images
	if d.IsCreated() {
		d.win.SetIcon(images)
	}
}

// PixelScaleFactor returns the larger content scale axis, or 1 without a window
func (d *Display) PixelScaleFactor() float32 {
	if !d.IsCreated() {
		return 1
	}
	sx, sy := d.win.GetContentScale()
	return max(sx, sy)
}

func (d *Display) IsActive() bool  { return d.state.Focused() }
func (d *Display) IsVisible() bool { return d.state.Visible() }
func (d *Display) IsDirty() bool   { return d.state.Dirty() }
func (d *Display) WasResized() bool {
	return d.state.Resized()
}

func (d *Display) IsCloseRequested() bool {
	return d.IsCreated() && d.win.ShouldClose()
}

func (d *Display) Width() int {
	w, _ := d.state.Size()
	return w
}

func (d *Display) Height() int {
	_, h := d.state.Size()
	return h
}

func (d *Display) X() int {
	x, _ := d.state.Pos()
	return x
}

func (d *Display) Y() int {
	_, y := d.state.Pos()
	return y
}

func (d *Display) FramebufferWidth() int {
	w, _ := d.state.FramebufferSize()
	return w
}

func (d *Display) FramebufferHeight() int {
	_, h := d.state.FramebufferSize()
	return h
}
