package ui

import (
	"fmt"
	"strconv"

	"github.com/glcompat/glcompat/internal/input"
)

// FormatKeyEvent renders one reconciled keyboard event on a single line
func FormatKeyEvent(ev input.KeyEvent) string {
	icon := IconReleased
	style := SubtleStyle
	switch ev.State {
	case input.KeyPress:
		icon, style = IconPressed, SuccessStyle
	case input.KeyRepeat:
		icon, style = IconRepeat, InfoStyle
	}

	name := input.KeyName(ev.Key)
	if name == "" {
		name = "KEY" + strconv.Itoa(ev.Key)
	}

	line := fmt.Sprintf("%s %-10s %s", style.Render(icon), name, FormatChar(ev.Char))
	if ev.OutOfOrder {
		line += " " + WarningStyle.Render("(out of order)")
	}
	return line
}

// FormatChar quotes printable characters and shows control characters as
// code points
func FormatChar(ch rune) string {
	switch {
	case ch == input.CharNone:
		return SubtleStyle.Render("-")
	case ch < 0x20 || ch == 0x7F || (ch >= 0xD800 && ch <= 0xDFFF):
		return fmt.Sprintf("U+%04X", ch)
	default:
		return strconv.QuoteRune(ch)
	}
}

// FormatMouseEvent renders the mouse event currently selected by Next
func FormatMouseEvent(m *input.Mouse) string {
	if b := m.EventButton(); b >= 0 {
		icon := IconReleased
		if m.EventButtonState() {
			icon = IconPressed
		}
		return fmt.Sprintf("%s %s at %d,%d", icon, input.ButtonName(b), m.EventX(), m.EventY())
	}
	if w := m.EventDWheel(); w != 0 || m.EventDWheelX() != 0 {
		return fmt.Sprintf("wheel %d,%d", m.EventDWheelX(), w)
	}
	return fmt.Sprintf("move %d,%d (%+d,%+d)", m.EventX(), m.EventY(), m.EventDX(), m.EventDY())
}
