package display

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glcompat/glcompat/internal/logger"
)

const unknown = "Unknown"

func initGL() error {
	return gl.Init()
}

func glString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return unknown
	}
	return gl.GoStr(p)
}

// Adapter returns the GL vendor string
func (d *Display) Adapter() string {
	if !d.IsCreated() {
		return unknown
	}
	return glString(gl.VENDOR)
}

// Version returns the GL version string
func (d *Display) Version() string {
	if !d.IsCreated() {
		return unknown
	}
	return glString(gl.VERSION)
}

// LogGLInfo writes the renderer details to the log
func (d *Display) LogGLInfo() {
	if !d.IsCreated() {
		return
	}
	logger.Infof("Renderer: %s", glString(gl.RENDERER))
	logger.Infof("Version: %s", glString(gl.VERSION))
	logger.Infof("GLSL Version: %s", glString(gl.SHADING_LANGUAGE_VERSION))
}

// ClearColor clears the color buffer, used by callers that draw nothing else
func ClearColor(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// MakeCurrent makes the display's context current on this thread
func (d *Display) MakeCurrent() error {
	if !d.IsCreated() {
		return ErrNotCreated
	}
	d.win.MakeContextCurrent()
	return nil
}

// ReleaseContext detaches any context from this thread
func (d *Display) ReleaseContext() {
	glfw.DetachCurrentContext()
}

func (d *Display) IsCurrent() bool {
	return d.IsCreated() && glfw.GetCurrentContext() == d.win
}

// ContextGL is an OpenGL context bound to a window. Shared contexts own their
// window and destroy it with the context.
type ContextGL struct {
	win    *glfw.Window
	shared bool
}

// Context returns the display's own context
func (d *Display) Context() (*ContextGL, error) {
	if !d.IsCreated() {
		return nil, ErrNotCreated
	}
	return &ContextGL{win: d.win}, nil
}

// NewSharedContext creates a hidden window whose context shares objects with
// the display's context.
func (d *Display) NewSharedContext() (*ContextGL, error) {
	if !d.IsCreated() {
		return nil, ErrNotCreated
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := glfw.CreateWindow(1, 1, "", nil, d.win)
	glfw.WindowHint(glfw.Visible, glfw.True)
	if err != nil {
		return nil, err
	}
	return &ContextGL{win: win, shared: true}, nil
}

func (c *ContextGL) MakeCurrent() {
	if c.win != nil {
		c.win.MakeContextCurrent()
	}
}

func (c *ContextGL) ReleaseCurrent() {
	glfw.DetachCurrentContext()
}

func (c *ContextGL) IsCurrent() bool {
	return c.win != nil && glfw.GetCurrentContext() == c.win
}

func (c *ContextGL) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *ContextGL) SwapBuffers() {
	if c.win != nil {
		c.win.SwapBuffers()
	}
}

// Destroy destroys the window of a shared context. The display's own context
// lives as long as the display.
func (c *ContextGL) Destroy() {
	if c.shared && c.win != nil {
		c.win.Destroy()
		c.win = nil
	}
}
