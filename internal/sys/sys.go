package sys

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/ncruces/zenity"
	"github.com/pkg/browser"

	"github.com/glcompat/glcompat/internal/logger"
)

// ErrNoWindow is returned by clipboard writes when neither a window nor the
// system clipboard is available.
var ErrNoWindow = errors.New("no window for clipboard access")

// Version is the library version, set at build time
var Version = "0.1.0-dev"

// ClipboardSource is a window that can read and write the clipboard
type ClipboardSource interface {
	ClipboardString() string
	SetClipboardString(text string)
}

var (
	alertFunc = func(title, message string) error {
		return zenity.Warning(message, zenity.Title(title))
	}
	openURLFunc = browser.OpenURL

	readSystemClipboard  = clipboard.ReadAll
	writeSystemClipboard = clipboard.WriteAll
)

// Sys bundles the system services available to legacy code
type Sys struct {
	*Clock
	window ClipboardSource
}

// New creates a Sys reading time from timer. A nil timer uses a monotonic
// fallback until a native one is installed with SetTimer.
func New(timer Timer) *Sys {
	return &Sys{Clock: NewClock(timer)}
}

// SetWindow installs the window used for clipboard access. Pass nil when the
// window goes away.
func (s *Sys) SetWindow(w ClipboardSource) {
	s.window = w
}

// Alert shows a blocking warning dialog. Failures are logged, since there is
// nothing left to report them to.
func (s *Sys) Alert(title, message string) {
	if err := alertFunc(title, message); err != nil {
		logger.Warnf("Alert dialog failed (%s: %s): %v", title, message, err)
	}
}

// OpenURL opens url in the default browser
func (s *Sys) OpenURL(url string) error {
	if err := openURLFunc(url); err != nil {
		return fmt.Errorf("failed to open URL: %w", err)
	}
	return nil
}

// Clipboard returns the clipboard text, or "" when it cannot be read.
func (s *Sys) Clipboard() string {
	if s.window != nil {
		return s.window.ClipboardString()
	}
	text, err := readSystemClipboard()
	if err != nil {
		logger.Debugf("System clipboard unavailable: %v", err)
		return ""
	}
	return text
}

// SetClipboard replaces the clipboard text
func (s *Sys) SetClipboard(text string) error {
	if s.window != nil {
		s.window.SetClipboardString(text)
		return nil
	}
	if err := writeSystemClipboard(text); err != nil {
		return fmt.Errorf("%w: %v", ErrNoWindow, err)
	}
	return nil
}

// Is64Bit reports whether the process runs on a 64-bit architecture
func Is64Bit() bool {
	return strings.HasSuffix(runtime.GOARCH, "64")
}

// IsWayland reports whether the session is a Wayland session on Linux or
// FreeBSD.
func IsWayland() bool {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		return false
	}
	return isWaylandSession(os.Getenv("XDG_SESSION_TYPE"))
}

func isWaylandSession(sessionType string) bool {
	return strings.HasPrefix(strings.ToLower(sessionType), "wayland")
}
