package imtui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// maxFollow bounds how many command results one Send may chain through.
const maxFollow = 64

// Harness drives a Program synchronously for tests. Commands returned by a
// frame are executed in place and their messages fed back as new frames.
type Harness struct {
	program *Program
	frames  int
	quit    bool
}

// NewHarness creates a harness and runs the program's first frame.
func NewHarness(program *Program) *Harness {
	h := &Harness{program: program}
	h.processCmd(program.Init(), 0)
	return h
}

// Send routes a message through the program and executes any returned
// commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.program == nil || h.quit {
		return
	}
	h.update(msg, 0)
}

// Type sends text as a single rune key press.
func (h *Harness) Type(text string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// Press sends a key with no runes.
func (h *Harness) Press(t tea.KeyType) {
	h.Send(tea.KeyMsg{Type: t})
}

// Click sends a left button press at (x, y).
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

func (h *Harness) update(msg tea.Msg, depth int) {
	if _, ok := msg.(tea.QuitMsg); ok {
		h.quit = true
		return
	}
	h.frames++
	_, cmd := h.program.Update(msg)
	h.processCmd(cmd, depth+1)
}

func (h *Harness) processCmd(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > maxFollow || h.quit {
		return
	}
	msg := cmd()
	switch m := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range m {
			h.processCmd(c, depth)
		}
	default:
		h.update(m, depth)
	}
}

// View returns the current view with escape sequences removed.
func (h *Harness) View() string {
	return ansi.Strip(h.program.View())
}

// Frames counts the frames run so far.
func (h *Harness) Frames() int { return h.frames }

// Quit reports whether the program asked to quit.
func (h *Harness) Quit() bool { return h.quit }

// Program exposes the underlying program.
func (h *Harness) Program() *Program { return h.program }
