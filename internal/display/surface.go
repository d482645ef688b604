package display

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glcompat/glcompat/internal/input"
)

// The display is the mouse's surface, the keyboard's live key source and the
// clipboard backend of Sys.

// Size returns the committed window size
func (d *Display) Size() (int, int) {
	return d.state.Size()
}

func (d *Display) SetCursorPos(x, y float64) {
	if d.IsCreated() {
		d.win.SetCursorPos(x, y)
	}
}

func (d *Display) SetCursorGrabbed(grabbed bool) {
	if !d.IsCreated() {
		return
	}
	if grabbed {
		d.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		d.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (d *Display) MouseButtonDown(button int) bool {
	if !d.IsCreated() || button < 0 || button > int(glfw.MouseButtonLast) {
		return false
	}
	return d.win.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (d *Display) Visible() bool {
	return d.state.Visible()
}

func (d *Display) KeyDown(key input.NativeKey) bool {
	if !d.IsCreated() || key < input.NativeSpace || key > input.NativeLast {
		return false
	}
	return d.win.GetKey(glfw.Key(key)) == glfw.Press
}

func (d *Display) ClipboardString() string {
	if !d.IsCreated() {
		return ""
	}
	return d.win.GetClipboardString()
}

func (d *Display) SetClipboardString(text string) {
	if d.IsCreated() {
		d.win.SetClipboardString(text)
	}
}

// glfwTimer reads the GLFW high resolution timer
type glfwTimer struct{}

func (glfwTimer) Value() uint64     { return glfw.GetTimerValue() }
func (glfwTimer) Frequency() uint64 { return glfw.GetTimerFrequency() }
