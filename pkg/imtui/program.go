package imtui

import tea "github.com/charmbracelet/bubbletea"

// Program adapts a draw function into a Bubble Tea model. Every message runs
// one full frame.
type Program struct {
	ctx  *Context
	draw func(ui *Ui)
	view string
}

// NewProgram returns a model that draws with draw on every frame.
func NewProgram(ctx *Context, draw func(ui *Ui)) *Program {
	return &Program{ctx: ctx, draw: draw}
}

// Init runs the first frame.
func (p *Program) Init() tea.Cmd {
	return Repaint
}

func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ui := p.ctx.Begin(msg)
	p.draw(ui)
	out := p.ctx.End(ui)
	p.view = out.View
	return p, out.Cmd
}

func (p *Program) View() string {
	return p.view
}

func (p *Program) Context() *Context {
	return p.ctx
}
