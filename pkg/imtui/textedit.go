package imtui

import (
	"github.com/atomicstack/combopick/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultFieldWidth = 24

// Response describes what happened to a widget during the frame.
type Response struct {
	ID          ID
	Rect        Rect
	Clicked     bool
	HasFocus    bool
	GainedFocus bool
	LostFocus   bool
	// TextChanged is set when a keystroke edited a text field's buffer.
	TextChanged bool

	changed bool
}

// Changed reports whether the widget committed a new bound value. Plain
// text edits do not count; see TextChanged.
func (r Response) Changed() bool { return r.changed }

// MarkChanged flags the response as changed.
func (r *Response) MarkChanged() { r.changed = true }

// TextEditOptions configures a single-line text field.
type TextEditOptions struct {
	// Label is drawn to the left of the field.
	Label string
	// Hint is shown dimmed while the field is empty.
	Hint      string
	Width     int
	CharLimit int
}

type textRole int

const (
	roleInput textRole = iota
	roleWasFocused
)

// TextEdit draws a single-line field editing *text. Focus transitions are
// reported relative to the previous frame the field was drawn in.
func (ui *Ui) TextEdit(id ID, text *string, opts TextEditOptions) Response {
	mem := ui.ctx.mem
	styles := ui.ctx.styles
	width := opts.Width
	if width <= 0 {
		width = defaultFieldWidth
	}
	rect := Rect{X: ui.x + lipgloss.Width(opts.Label), Y: ui.next(), W: width, H: 1}
	ui.f.next.fields[id] = rect
	ui.f.next.order = append(ui.f.next.order, id)

	focused := ui.ctx.focus == id
	was := GetOr(mem, id.With(roleWasFocused), false)
	model, ok := Get[textinput.Model](mem, id.With(roleInput))
	if !ok {
		model = newTextInput(styles)
	}
	model.Placeholder = opts.Hint
	model.Width = width - 1
	model.CharLimit = opts.CharLimit
	model.TextStyle = *styles.Field
	if focused {
		model.TextStyle = *styles.FieldFocused
	}
	if model.Value() != *text {
		model.SetValue(*text)
		model.CursorEnd()
	}
	switch {
	case focused && !model.Focused():
		ui.AddCmd(model.Focus())
	case !focused && model.Focused():
		model.Blur()
	}

	resp := Response{
		ID:          id,
		Rect:        rect,
		HasFocus:    focused,
		GainedFocus: focused && !was,
		LostFocus:   !focused && was,
	}
	if focused && ui.f.in.forText(ui.ctx.keys) {
		var cmd tea.Cmd
		model, cmd = model.Update(ui.f.in.msg)
		ui.AddCmd(cmd)
		if v := model.Value(); v != *text {
			*text = v
			resp.TextChanged = true
		}
	}
	if c := ui.f.in.click; c != nil && rect.Contains(c.X, c.Y) {
		resp.Clicked = true
	}
	Insert(mem, id.With(roleInput), model)
	Insert(mem, id.With(roleWasFocused), focused)

	label := ""
	if opts.Label != "" {
		label = styledLine{text: opts.Label, style: styles.Label}.render()
	}
	ui.add(label + model.View())
	return resp
}

func newTextInput(styles *theme.Styles) textinput.Model {
	m := textinput.New()
	m.Prompt = ""
	m.PlaceholderStyle = *styles.Placeholder
	m.Cursor.Style = *styles.Cursor
	m.Cursor.SetMode(cursor.CursorStatic)
	return m
}
