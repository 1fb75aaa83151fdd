package imtui

import (
	"github.com/atomicstack/combopick/internal/logging/events"
	"github.com/atomicstack/combopick/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a cell rectangle in absolute screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RepaintMsg asks the program to run another frame.
type RepaintMsg struct{}

// Repaint is a command producing RepaintMsg.
func Repaint() tea.Msg {
	return RepaintMsg{}
}

// layout is what a frame leaves behind for hit testing in the next one.
type layout struct {
	fields map[ID]Rect
	order  []ID
	popups []Rect
}

// Context owns everything that outlives a single frame.
type Context struct {
	mem    *Memory
	keys   KeyMap
	styles *theme.Styles
	help   help.Model

	width  int
	height int

	focus      ID
	pending    ID
	hasPending bool

	last layout
}

// ContextOption customises a Context.
type ContextOption func(*Context)

func WithKeyMap(keys KeyMap) ContextOption {
	return func(c *Context) { c.keys = keys }
}

func WithStyles(styles *theme.Styles) ContextOption {
	return func(c *Context) {
		if styles != nil {
			c.styles = styles
		}
	}
}

// WithSize fixes the viewport size. Window size messages still override it.
func WithSize(width, height int) ContextOption {
	return func(c *Context) {
		c.width = width
		c.height = height
	}
}

// NewContext creates an empty context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		mem:    newMemory(),
		keys:   DefaultKeyMap(),
		styles: theme.Default(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.help.Styles.ShortDesc = *c.styles.Help
	c.help.Styles.ShortSeparator = *c.styles.Help
	c.help.Styles.FullDesc = *c.styles.Help
	return c
}

func (c *Context) Memory() *Memory { return c.mem }

// Focused returns the widget holding input focus, or 0.
func (c *Context) Focused() ID { return c.focus }

// RequestFocus moves focus to id at the start of the next frame.
func (c *Context) RequestFocus(id ID) {
	c.pending = id
	c.hasPending = true
}

// Begin starts a frame for msg. Focus changes caused by msg are applied
// before any widget runs so every widget sees the same focus state.
func (c *Context) Begin(msg tea.Msg) *Ui {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		c.width = size.Width
		c.height = size.Height
		c.help.Width = size.Width
	}
	in := newInput(msg)
	c.applyFocus(in)
	f := &frame{
		in:   in,
		next: layout{fields: make(map[ID]Rect)},
	}
	return &Ui{ctx: c, f: f, width: c.width}
}

// Frame is the rendered result of one frame.
type Frame struct {
	View string
	Cmd  tea.Cmd
}

// End finishes the frame started by Begin.
func (c *Context) End(ui *Ui) Frame {
	f := ui.f
	c.last = f.next
	if c.focus != 0 {
		if _, ok := f.next.fields[c.focus]; !ok {
			c.setFocus(0)
		}
	}
	cmds := f.cmds
	if f.repaint {
		cmds = append(cmds, Repaint)
	}
	if f.quit {
		cmds = append(cmds, tea.Quit)
	}
	return Frame{
		View: compose(ui.lines, f.layers, c.height),
		Cmd:  tea.Batch(cmds...),
	}
}

func (c *Context) applyFocus(in input) {
	if c.hasPending {
		c.setFocus(c.pending)
		c.hasPending = false
	}
	if in.hasKey {
		switch {
		case key.Matches(in.key, c.keys.Next):
			c.setFocus(c.cycle(1))
		case key.Matches(in.key, c.keys.Prev):
			c.setFocus(c.cycle(-1))
		case key.Matches(in.key, c.keys.Blur), key.Matches(in.key, c.keys.Enter):
			// Single-line fields give up focus on Enter as well as Esc.
			c.setFocus(0)
		}
	}
	if in.click != nil {
		c.setFocus(c.hit(*in.click))
	}
}

func (c *Context) setFocus(id ID) {
	if id == c.focus {
		return
	}
	events.Focus.Change(c.focus.String(), id.String())
	c.focus = id
}

func (c *Context) cycle(dir int) ID {
	order := c.last.order
	if len(order) == 0 {
		return c.focus
	}
	for i, id := range order {
		if id == c.focus {
			return order[(i+dir+len(order))%len(order)]
		}
	}
	if dir < 0 {
		return order[len(order)-1]
	}
	return order[0]
}

// hit resolves a click against last frame's layout. Popups sit above fields
// and never take focus themselves.
func (c *Context) hit(p Pos) ID {
	for _, r := range c.last.popups {
		if r.Contains(p.X, p.Y) {
			return 0
		}
	}
	for _, id := range c.last.order {
		if c.last.fields[id].Contains(p.X, p.Y) {
			return id
		}
	}
	return 0
}
