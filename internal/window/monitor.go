package window

import (
	"errors"
	"fmt"

	"github.com/glcompat/glcompat/internal/logger"
)

// ErrNoMonitors is returned when no monitor source reports any monitor
var ErrNoMonitors = errors.New("no monitors found")

// Monitor represents a physical display
type Monitor struct {
	Name    string
	X       int // Position in global coordinate space
	Y       int
	Primary bool
	Scale   float64
	Mode    DisplayMode
}

// Bounds returns the monitor's boundaries
func (m *Monitor) Bounds() (x1, y1, x2, y2 int) {
	return m.X, m.Y, m.X + m.Mode.Width, m.Y + m.Mode.Height
}

// Contains checks if a point is within this monitor
func (m *Monitor) Contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Mode.Width && y >= m.Y && y < m.Y+m.Mode.Height
}

// MonitorSource enumerates the monitors of the current session
type MonitorSource interface {
	Monitors() ([]*Monitor, error)
}

// Layout is a snapshot of the monitor arrangement
type Layout struct {
	monitors []*Monitor
}

// NewLayout queries src once and keeps the result
func NewLayout(src MonitorSource) (*Layout, error) {
	monitors, err := src.Monitors()
	if err != nil {
		return nil, fmt.Errorf("failed to list monitors: %w", err)
	}
	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}
	logger.Debugf("Layout: %d monitor(s)", len(monitors))
	return &Layout{monitors: monitors}, nil
}

// Monitors returns all detected monitors
func (l *Layout) Monitors() []*Monitor {
	return l.monitors
}

// Primary returns the primary monitor
func (l *Layout) Primary() *Monitor {
	for _, m := range l.monitors {
		if m.Primary {
			return m
		}
	}
	// Fallback to first monitor
	if len(l.monitors) > 0 {
		return l.monitors[0]
	}
	return nil
}

// At returns the monitor containing the given point, or nil
func (l *Layout) At(x, y int) *Monitor {
	for _, m := range l.monitors {
		if m.Contains(x, y) {
			return m
		}
	}
	return nil
}

// ForWindow picks the monitor a window at (x, y) should go fullscreen on,
// falling back to the primary monitor.
func (l *Layout) ForWindow(x, y int) *Monitor {
	if m := l.At(x, y); m != nil {
		return m
	}
	logger.Debugf("No monitor contains window origin %d,%d; using primary", x, y)
	return l.Primary()
}
