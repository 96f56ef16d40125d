package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/keypad"
)

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorError   = colorRed
	colorWarning = colorYellow
)

// keyColors assigns a foreground per button kind.
var keyColors = map[keypad.Kind]lipgloss.Color{
	keypad.KindDigit:    colorText,
	keypad.KindOperator: colorPeach,
	keypad.KindControl:  colorTeal,
	keypad.KindEquals:   colorGreen,
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true).
			Padding(0, 1)

	tapeStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1).
			Align(lipgloss.Right)

	previousStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	currentStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Align(lipgloss.Center)

	focusedButtonStyle = buttonStyle.
				BorderForeground(colorFocus).
				Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorWarning)
	footerStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
)

func styleForButton(b keypad.Button, focused bool) lipgloss.Style {
	s := buttonStyle
	if focused {
		s = focusedButtonStyle
	}
	return s.Foreground(keyColors[b.Kind])
}
