package imtui

import tea "github.com/charmbracelet/bubbletea"

// Pos is a cell position.
type Pos struct {
	X, Y int
}

// input is the message driving the current frame, pre-classified.
type input struct {
	msg    tea.Msg
	key    tea.KeyMsg
	hasKey bool
	click  *Pos
	wheel  int
	at     Pos
}

func newInput(msg tea.Msg) input {
	in := input{msg: msg}
	switch m := msg.(type) {
	case tea.KeyMsg:
		in.key = m
		in.hasKey = true
	case tea.MouseMsg:
		in.at = Pos{X: m.X, Y: m.Y}
		switch {
		case m.Button == tea.MouseButtonLeft && m.Action == tea.MouseActionPress:
			in.click = &Pos{X: m.X, Y: m.Y}
		case m.Button == tea.MouseButtonWheelUp:
			in.wheel = -1
		case m.Button == tea.MouseButtonWheelDown:
			in.wheel = 1
		}
	}
	return in
}

// forText reports whether the message should reach a focused text field.
// Toolkit keys, mouse, resize and repaint messages never do; anything else,
// such as a paste result, is passed through.
func (in input) forText(keys KeyMap) bool {
	switch in.msg.(type) {
	case tea.KeyMsg:
		return !keys.reserved(in.key)
	case tea.MouseMsg, tea.WindowSizeMsg, RepaintMsg, nil:
		return false
	default:
		return true
	}
}
