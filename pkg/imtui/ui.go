package imtui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frame is the state shared by every Ui of one frame.
type frame struct {
	in      input
	cmds    []tea.Cmd
	repaint bool
	quit    bool
	layers  []layer
	next    layout
}

// Ui is the per-frame drawing surface. Widgets are added top to bottom.
type Ui struct {
	ctx   *Context
	f     *frame
	x, y  int
	width int
	lines []string
}

// child returns a surface whose rows start at the absolute cell (x, y).
func (ui *Ui) child(x, y, width int) *Ui {
	return &Ui{ctx: ui.ctx, f: ui.f, x: x, y: y, width: width}
}

// next returns the absolute row the next widget will occupy.
func (ui *Ui) next() int {
	return ui.y + len(ui.lines)
}

func (ui *Ui) add(line string) Rect {
	r := Rect{X: ui.x, Y: ui.next(), W: lipgloss.Width(line), H: 1}
	ui.lines = append(ui.lines, line)
	return r
}

func (ui *Ui) styled(text string, style *lipgloss.Style) Rect {
	return ui.add(styledLine{text: text, style: style}.render())
}

func (ui *Ui) Memory() *Memory { return ui.ctx.mem }

func (ui *Ui) Keys() KeyMap { return ui.ctx.keys }

// KeyPressed reports whether this frame's message matches binding.
func (ui *Ui) KeyPressed(binding key.Binding) bool {
	return ui.f.in.hasKey && key.Matches(ui.f.in.key, binding)
}

// RequestRepaint schedules another frame after this one.
func (ui *Ui) RequestRepaint() { ui.f.repaint = true }

// Quit ends the program after this frame.
func (ui *Ui) Quit() { ui.f.quit = true }

// AddCmd queues a Bubble Tea command.
func (ui *Ui) AddCmd(cmd tea.Cmd) {
	if cmd != nil {
		ui.f.cmds = append(ui.f.cmds, cmd)
	}
}

// RequestFocus moves focus to id from the next frame on.
func (ui *Ui) RequestFocus(id ID) {
	ui.ctx.RequestFocus(id)
	ui.RequestRepaint()
}

func (ui *Ui) Label(text string) Rect {
	return ui.add(text)
}

func (ui *Ui) Heading(text string) Rect {
	return ui.styled(text, ui.ctx.styles.Heading)
}

func (ui *Ui) Status(text string) Rect {
	return ui.styled(text, ui.ctx.styles.Status)
}

func (ui *Ui) Error(text string) Rect {
	return ui.styled(text, ui.ctx.styles.Error)
}

// Space adds an empty row.
func (ui *Ui) Space() Rect {
	return ui.add("")
}

// HelpLine renders the key map as a one-line hint.
func (ui *Ui) HelpLine() Rect {
	return ui.add(ui.ctx.help.View(ui.ctx.keys))
}
