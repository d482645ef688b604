// Package display owns the native GLFW window, its OpenGL context and the
// per-frame input pump.
package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glcompat/glcompat/internal/config"
	"github.com/glcompat/glcompat/internal/input"
	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/sys"
	"github.com/glcompat/glcompat/internal/window"
)

var (
	// ErrAlreadyCreated is returned by Create on a live display
	ErrAlreadyCreated = errors.New("display already created")
	// ErrNotCreated is returned by operations that need a window
	ErrNotCreated = errors.New("display not created")
)

func init() {
	// GLFW event processing must happen on the main thread
	runtime.LockOSThread()
}

// Display is the game window. Create one with New and open it with Create;
// every method must be called from the main thread.
type Display struct {
	cfg config.Config
	sys *sys.Sys

	win     *glfw.Window
	created bool
	glfwUp  bool

	state      *window.State
	fullscreen window.Fullscreen
	mode       window.DisplayMode
	desktop    window.DisplayMode

	title          string
	resizable      bool
	wantFullscreen bool
	icons          []image.Image

	keyboard *input.Keyboard
	mouse    *input.Mouse
	pump     *input.Pump
	limiter  sys.FrameLimiter
}

// New prepares a display from cfg. No native resources are touched until
// Create.
func New(cfg config.Config, s *sys.Sys) (*Display, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		s = sys.New(nil)
	}

	d := &Display{
		cfg:            cfg,
		sys:            s,
		state:          window.NewState(cfg.Window.Width, cfg.Window.Height),
		mode:           window.NewDisplayMode(cfg.Window.Width, cfg.Window.Height),
		title:          cfg.Window.Title,
		resizable:      cfg.Window.Resizable,
		wantFullscreen: cfg.Window.Fullscreen,
	}

	kb, err := input.NewKeyboard(cfg.Input.KeyboardCapacity, cfg.Input.RepeatEvents)
	if err != nil {
		return nil, err
	}
	mouse, err := input.NewMouse(cfg.Input.MouseCapacity, d, s.NanoTime)
	if err != nil {
		return nil, err
	}
	mouse.SetClipMouseCoordinatesToWindow(cfg.Input.ClipMouse)
	kb.SetKeySource(d)

	d.keyboard = kb
	d.mouse = mouse
	d.pump = input.NewPump(kb, mouse, d.state)

	for _, path := range cfg.Window.Icons {
		img, err := window.LoadIconFile(path)
		if err != nil {
			logger.Warnf("Skipping window icon: %v", err)
			continue
		}
		d.icons = append(d.icons, img)
	}
	return d, nil
}

func (d *Display) Keyboard() *input.Keyboard { return d.keyboard }

func (d *Display) Mouse() *input.Mouse { return d.mouse }

// Pump exposes the input pump, mainly so callers can tap raw events
func (d *Display) Pump() *input.Pump { return d.pump }

// Sys returns the system services this display feeds its timer into
func (d *Display) Sys() *sys.Sys { return d.sys }

func (d *Display) initGLFW() error {
	if d.glfwUp {
		return nil
	}
	if sys.IsWayland() {
		logger.Info("Wayland session detected")
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	logger.Debugf("GLFW: %s", glfw.GetVersionString())
	d.glfwUp = true
	d.sys.SetTimer(glfwTimer{})
	return nil
}

// Create opens the window and makes its context current
func (d *Display) Create() error {
	if d.created {
		return ErrAlreadyCreated
	}
	if err := d.initGLFW(); err != nil {
		return err
	}

	d.desktop = desktopMode()
	d.applyWindowHints()

	win, err := glfw.CreateWindow(d.mode.Width, d.mode.Height, d.title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create display window: %w", err)
	}
	d.win = win

	if d.cfg.Input.RawMouseMotion && glfw.RawMouseMotionSupported() {
		win.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	d.installCallbacks()

	fbw, fbh := win.GetFramebufferSize()
	d.state.SetFramebufferSize(fbw, fbh)
	d.state.SetPos(window.Centered(d.desktop, d.mode))

	win.MakeContextCurrent()
	if err := initGL(); err != nil {
		logger.Warnf("OpenGL bindings unavailable: %v", err)
	}
	glfw.SwapInterval(vsyncInterval(d.cfg.Window.VSync))

	d.created = true
	d.sys.SetWindow(d)
	logger.Infof("Display created: %dx%d %q", d.mode.Width, d.mode.Height, d.title)

	if len(d.icons) > 0 {
		win.SetIcon(d.icons)
	}
	if d.wantFullscreen {
		if err := d.SetFullscreen(true); err != nil {
			logger.Warnf("Initial fullscreen failed: %v", err)
		}
	}

	// Seed the state with the real size; the window manager may have
	// adjusted the requested one.
	ww, wh := win.GetSize()
	fbw, fbh = win.GetFramebufferSize()
	now := d.sys.NanoTime()
	d.pump.Intake().Push(input.RawEvent{Kind: input.EventSize, W: ww, H: wh, Nanos: now})
	d.pump.Intake().Push(input.RawEvent{Kind: input.EventFramebufferSize, W: fbw, H: fbh, Nanos: now})
	return nil
}

func (d *Display) applyWindowHints() {
	gl := d.cfg.GL
	glfw.DefaultWindowHints()

	if gl.BackwardCompatible {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(d.resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, gl.VersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, gl.VersionMinor)

	glfw.WindowHint(glfw.OpenGLDebugContext, boolHint(gl.Debug))
	glfw.WindowHint(glfw.ContextNoError, boolHint(gl.NoError))
	glfw.WindowHint(glfw.SRGBCapable, boolHint(gl.SRGB))
	glfw.WindowHint(glfw.DoubleBuffer, boolHint(gl.DoubleBuffer))

	p := d.cfg.Platform
	glfw.WindowHintString(glfw.CocoaFrameNAME, p.CocoaFrameName)
	glfw.WindowHint(glfw.CocoaRetinaFramebuffer, boolHint(p.CocoaRetinaFramebuffer))
	glfw.WindowHintString(glfw.X11ClassName, p.X11ClassName)
	// TODO: set p.WaylandAppID once the bindings move to GLFW 3.4, which
	// adds GLFW_WAYLAND_APP_ID.
}

// Destroy closes the window. With terminate set GLFW itself is shut down.
func (d *Display) Destroy(terminate bool) error {
	if !d.created {
		return ErrNotCreated
	}
	d.releaseCallbacks()
	d.win.Destroy()
	d.win = nil
	d.created = false
	d.sys.SetWindow(nil)

	if terminate {
		d.Terminate()
	}
	logger.Debug("Display destroyed")
	return nil
}

// Terminate shuts GLFW down. The timer falls back to the monotonic clock.
func (d *Display) Terminate() {
	if !d.glfwUp {
		return
	}
	glfw.Terminate()
	d.glfwUp = false
	d.sys.SetTimer(sys.NewMonotonicTimer())
}

func (d *Display) IsCreated() bool {
	return d.created && d.win != nil
}

// Update swaps the buffers and, when processMessages is set, polls events
func (d *Display) Update(processMessages bool) {
	if !d.IsCreated() {
		return
	}
	d.SwapBuffers()
	d.state.ClearDirty()
	if processMessages {
		d.ProcessMessages()
	}
}

// ProcessMessages polls native events and runs the input pump
func (d *Display) ProcessMessages() {
	if !d.IsCreated() {
		return
	}
	glfw.PollEvents()
	d.keyboard.Poll()
	d.pump.Process()

	if d.state.Resized() {
		fbw, fbh := d.win.GetFramebufferSize()
		d.state.SetFramebufferSize(fbw, fbh)
	}
}

func (d *Display) SwapBuffers() {
	if !d.IsCreated() {
		return
	}
	d.win.SwapBuffers()
}

// Sync sleeps as needed to hold the loop at fps frames per second
func (d *Display) Sync(fps int) {
	if !d.IsCreated() {
		return
	}
	if err := d.limiter.Wait(context.Background(), fps); err != nil {
		logger.Debugf("Frame sync interrupted: %v", err)
	}
}

func (d *Display) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (d *Display) SetVSyncEnabled(vsync bool) {
	if !d.IsCreated() {
		return
	}
	d.SetSwapInterval(vsyncInterval(vsync))
}

func vsyncInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
