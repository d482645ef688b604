package display

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glcompat/glcompat/internal/input"
)

// installCallbacks routes every native callback into the pump's intake. The
// callbacks only record; all processing happens in ProcessMessages.
func (d *Display) installCallbacks() {
	in := d.pump.Intake()
	now := d.sys.NanoTime

	d.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		in.Push(input.RawEvent{
			Kind:     input.EventKey,
			Key:      input.NativeKey(key),
			Scancode: scancode,
			Action:   input.Action(action),
			Mods:     input.Mods(mods),
			Nanos:    now(),
		})
	})
	d.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		in.Push(input.RawEvent{Kind: input.EventChar, Char: char, Nanos: now()})
	})
	d.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		in.Push(input.RawEvent{Kind: input.EventCursorPos, X: x, Y: y, Nanos: now()})
	})
	d.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		in.Push(input.RawEvent{
			Kind:   input.EventMouseButton,
			Key:    input.NativeKey(button),
			Action: input.Action(action),
			Mods:   input.Mods(mods),
			Nanos:  now(),
		})
	})
	d.win.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		in.Push(input.RawEvent{Kind: input.EventScroll, X: x, Y: y, Nanos: now()})
	})
	d.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		in.Push(input.RawEvent{Kind: input.EventFocus, Flag: focused, Nanos: now()})
	})
	d.win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		in.Push(input.RawEvent{Kind: input.EventIconify, Flag: iconified, Nanos: now()})
	})
	d.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		in.Push(input.RawEvent{Kind: input.EventSize, W: width, H: height, Nanos: now()})
	})
	d.win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		in.Push(input.RawEvent{Kind: input.EventPos, W: x, H: y, Nanos: now()})
	})
	d.win.SetRefreshCallback(func(_ *glfw.Window) {
		in.Push(input.RawEvent{Kind: input.EventRefresh, Nanos: now()})
	})
	d.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		in.Push(input.RawEvent{Kind: input.EventFramebufferSize, W: width, H: height, Nanos: now()})
	})
}

func (d *Display) releaseCallbacks() {
	d.win.SetKeyCallback(nil)
	d.win.SetCharCallback(nil)
	d.win.SetCursorPosCallback(nil)
	d.win.SetMouseButtonCallback(nil)
	d.win.SetScrollCallback(nil)
	d.win.SetFocusCallback(nil)
	d.win.SetIconifyCallback(nil)
	d.win.SetSizeCallback(nil)
	d.win.SetPosCallback(nil)
	d.win.SetRefreshCallback(nil)
	d.win.SetFramebufferSizeCallback(nil)
}
