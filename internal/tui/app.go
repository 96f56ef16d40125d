package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/keypad"
)

// Options configures the App.
type Options struct {
	Formatter calc.Formatter
	TapeSize  int
	Keys      *KeyRegistry
	Logger    *zap.Logger
}

// App is the Bubble Tea model: a display above the keypad.
type App struct {
	machine   *calc.Machine
	formatter calc.Formatter
	keys      *KeyRegistry
	help      help.Model
	log       *zap.Logger

	focusRow int
	focusIdx int
	width    int
	status   string
}

func New(opts Options) *App {
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		machine:   calc.NewMachine(opts.TapeSize),
		formatter: opts.Formatter,
		keys:      keys,
		help:      help.New(),
		log:       logger,
		focusRow:  1,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// State exposes the calculator state.
func (a *App) State() calc.State {
	return a.machine.State()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		a.handleMouse(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.keys.Lookup(m.String())
	if b == nil {
		return a, nil
	}
	switch b.Action {
	case actionQuit:
		a.log.Info("quit")
		return a, tea.Quit
	case actionUp:
		a.moveVertical(-1)
	case actionDown:
		a.moveVertical(1)
	case actionLeft:
		if a.focusIdx > 0 {
			a.focusIdx--
		}
	case actionRight:
		if a.focusIdx < len(keypad.Layout[a.focusRow])-1 {
			a.focusIdx++
		}
	case actionPress:
		a.press(keypad.Layout[a.focusRow][a.focusIdx])
	}
	return a, nil
}

func (a *App) moveVertical(delta int) {
	col := keypad.StartColumn(a.focusRow, a.focusIdx)
	if _, idx, ok := keypad.At(col, a.focusRow+delta); ok {
		a.focusRow += delta
		a.focusIdx = idx
	}
}

func (a *App) handleMouse(m tea.MouseMsg) {
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return
	}
	col, row, ok := a.cellAt(m.X, m.Y)
	if !ok {
		return
	}
	b, idx, ok := keypad.At(col, row)
	if !ok {
		return
	}
	a.focusRow, a.focusIdx = row, idx
	a.press(b)
}

func (a *App) press(b keypad.Button) {
	a.log.Debug("dispatch", zap.String("button", b.Label), zap.Stringer("action", b.Action))
	if comp := a.machine.Dispatch(b.Action); comp != nil {
		a.log.Debug("computed", zap.String("expression", comp.String()))
	}
	a.status = ""
	if cur := a.machine.State().Current; cur != nil && *cur == calc.DivideByZero {
		a.status = "division by zero, AC resets"
	}
}
