package display

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glcompat/glcompat/internal/input"
	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/window"
)

func modeOf(vm *glfw.VidMode) window.DisplayMode {
	return window.DisplayMode{
		Width:             vm.Width,
		Height:            vm.Height,
		BitsPerPixel:      vm.RedBits + vm.GreenBits + vm.BlueBits,
		Frequency:         vm.RefreshRate,
		FullscreenCapable: true,
	}
}

func desktopMode() window.DisplayMode {
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		logger.Warn("No primary monitor; assuming 1920x1080")
		return window.DisplayMode{Width: 1920, Height: 1080, BitsPerPixel: 24, Frequency: 60}
	}
	return modeOf(m.GetVideoMode())
}

// DisplayMode returns the mode the window was created with
func (d *Display) DisplayMode() window.DisplayMode {
	return d.mode
}

// SetDisplayMode records a new mode. The window keeps its size; callers
// resize with SetSize.
func (d *Display) SetDisplayMode(mode window.DisplayMode) {
	if d.mode.Equal(mode) {
		return
	}
	d.mode = mode
}

// DesktopDisplayMode returns the current mode of the primary monitor
func (d *Display) DesktopDisplayMode() window.DisplayMode {
	if d.glfwUp {
		d.desktop = desktopMode()
	}
	return d.desktop
}

// AvailableDisplayModes lists the modes of the primary monitor
func (d *Display) AvailableDisplayModes() ([]window.DisplayMode, error) {
	if err := d.initGLFW(); err != nil {
		return nil, err
	}
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return []window.DisplayMode{desktopMode()}, nil
	}
	vms := m.GetVideoModes()
	if len(vms) == 0 {
		logger.Warn("No video modes found")
		return []window.DisplayMode{desktopMode()}, nil
	}
	modes := make([]window.DisplayMode, 0, len(vms))
	for _, vm := range vms {
		modes = append(modes, modeOf(vm))
	}
	return modes, nil
}

// monitorSource lists the GLFW monitors
type monitorSource struct{}

func (monitorSource) Monitors() ([]*window.Monitor, error) {
	primary := glfw.GetPrimaryMonitor()
	var out []*window.Monitor
	for _, m := range glfw.GetMonitors() {
		x, y := m.GetPos()
		sx, sy := m.GetContentScale()
		out = append(out, &window.Monitor{
			Name:    m.GetName(),
			X:       x,
			Y:       y,
			Primary: m == primary,
			Scale:   float64(max(sx, sy)),
			Mode:    modeOf(m.GetVideoMode()),
		})
	}
	return out, nil
}

// nativeMonitor finds the GLFW monitor a layout entry was built from
func nativeMonitor(target *window.Monitor) *glfw.Monitor {
	if target == nil {
		return nil
	}
	for _, m := range glfw.GetMonitors() {
		x, y := m.GetPos()
		if x == target.X && y == target.Y && m.GetName() == target.Name {
			return m
		}
	}
	return nil
}

// Monitors lists the connected monitors
func (d *Display) Monitors() ([]*window.Monitor, error) {
	if err := d.initGLFW(); err != nil {
		return nil, err
	}
	return monitorSource{}.Monitors()
}

func sizeEvent(w, h int, nanos int64) input.RawEvent {
	return input.RawEvent{Kind: input.EventSize, W: w, H: h, Nanos: nanos}
}
