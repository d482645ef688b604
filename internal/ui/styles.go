// Package ui provides consistent styling for the glcompat CLI
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorInfo    = lipgloss.Color("86")  // Cyan

	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray
)

var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	ControlKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Icons for key and button states
var (
	IconPressed  = "▼"
	IconReleased = "▲"
	IconRepeat   = "↻"
)

func FormatControl(key, desc string) string {
	return ControlKeyStyle.Render(key) + " - " + TextStyle.Render(desc)
}

// CreateSeparator creates a horizontal line separator
func CreateSeparator(width int, char string) string {
	if width <= 0 {
		width = 50
	}
	if char == "" {
		char = "─"
	}
	return SubtleStyle.Render(strings.Repeat(char, width))
}

// Table renders rows under headers with the first column highlighted
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorSubtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return lipgloss.NewStyle().
					Foreground(ColorPrimary).
					Bold(true).
					Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().
					Foreground(ColorInfo).
					Bold(true).
					Padding(0, 1)
			default:
				return lipgloss.NewStyle().
					Foreground(ColorText).
					Padding(0, 1)
			}
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}
