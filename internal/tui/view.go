package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/keypad"
)

const (
	cellWidth  = 8 // outer width of a one-column button, border included
	cellHeight = 3
	gridWidth  = cellWidth * keypad.Columns
	appTitle   = "jaskcalc"
)

func (a *App) View() string {
	grid := a.renderGrid()
	footer := footerStyle.Render(ansi.Truncate(a.help.ShortHelpView(a.keys.HelpBindings()), max(a.width, gridWidth), "…"))

	parts := []string{a.renderTop(), grid}
	if a.status != "" {
		parts = append(parts, statusStyle.Render(ansi.Truncate(a.status, gridWidth, "…")))
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTop is everything above the keypad. Mouse hit testing relies on
// its height.
func (a *App) renderTop() string {
	header := headerStyle.Width(gridWidth).Render(appTitle)
	lines := []string{header}
	for _, c := range a.machine.Tape() {
		lines = append(lines, tapeStyle.Render(ansi.Truncate(a.tapeLine(c), gridWidth, "…")))
	}
	lines = append(lines, a.renderDisplay())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) tapeLine(c calc.Computation) string {
	prev, _ := a.formatter.Operand(&c.Previous)
	cur, _ := a.formatter.Operand(&c.Current)
	res, _ := a.formatter.Operand(&c.Result)
	return prev + " " + c.Op.Symbol() + " " + cur + " = " + res
}

func (a *App) renderDisplay() string {
	inner := gridWidth - 4 // border plus padding
	s := a.machine.State()

	prev, _ := a.formatter.Operand(s.Previous)
	if s.Operation != nil {
		prev = strings.TrimSpace(prev + " " + s.Operation.Symbol())
	}
	cur, _ := a.formatter.Operand(s.Current)

	curStyle := currentStyle
	if cur == calc.DivideByZero {
		curStyle = errorStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Right,
		previousStyle.Render(fitLeft(prev, inner)),
		curStyle.Render(fitLeft(cur, inner)),
	)
	return displayStyle.Width(gridWidth - 2).Render(body)
}

// fitLeft keeps the rightmost width cells of s, which hold the most
// recently entered digits.
func fitLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	return "…" + ansi.TruncateLeft(s, w-width+1, "")
}

func (a *App) renderGrid() string {
	rows := make([]string, 0, keypad.Rows())
	for r, row := range keypad.Layout {
		cells := make([]string, 0, len(row))
		for i, b := range row {
			focused := r == a.focusRow && i == a.focusIdx
			cells = append(cells, styleForButton(b, focused).Width(cellWidth*b.Span-2).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cellAt maps a terminal position to a keypad unit cell.
func (a *App) cellAt(x, y int) (col, row int, ok bool) {
	top := lipgloss.Height(a.renderTop())
	if x < 0 || y < top || x >= gridWidth {
		return 0, 0, false
	}
	col = x / cellWidth
	row = (y - top) / cellHeight
	if row >= keypad.Rows() {
		return 0, 0, false
	}
	return col, row, true
}
