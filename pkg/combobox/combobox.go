package combobox

import (
	"iter"

	"github.com/atomicstack/combopick/internal/logging/events"
	"github.com/atomicstack/combopick/pkg/imtui"
)

const defaultMaxRows = 8

// role names one piece of a combo box's persisted state.
type role int

const (
	roleTextBuf role = iota
	roleCursorPos
	roleScroll
)

// ComboBox is a text field with a filtered dropdown of options. It holds no
// per-frame state itself; everything lives in the toolkit Memory keyed by
// the box's identity.
type ComboBox struct {
	id      imtui.ID
	label   string
	width   int
	maxRows int
}

// Setting configures a ComboBox.
type Setting func(*ComboBox)

// WithLabel sets the caption drawn left of the field.
func WithLabel(label string) Setting {
	return func(b *ComboBox) { b.label = label }
}

// WithWidth sets the field width in cells.
func WithWidth(width int) Setting {
	return func(b *ComboBox) { b.width = width }
}

// WithMaxRows caps how many rows the popup shows before scrolling.
func WithMaxRows(rows int) Setting {
	return func(b *ComboBox) {
		if rows > 0 {
			b.maxRows = rows
		}
	}
}

// New creates a combo box whose identity derives from salt. Two boxes with
// the same salt share state.
func New(salt any, settings ...Setting) *ComboBox {
	b := &ComboBox{id: imtui.NewID(salt), maxRows: defaultMaxRows}
	for _, s := range settings {
		s(b)
	}
	return b
}

// ID returns the identity of the box's text field.
func (b *ComboBox) ID() imtui.ID { return b.id }

// Text returns the buffer persisted by the last frame.
func (b *ComboBox) Text(mem *imtui.Memory) (string, bool) {
	return imtui.Get[string](mem, b.id.With(roleTextBuf))
}

// Show draws the box for this frame, bound to *value. Options are enumerated
// once per frame while the popup is open. The response is marked changed
// only when an option was committed into *value; edits to the buffer alone
// show up as TextChanged.
func Show[V Value, O Option[V]](ui *imtui.Ui, b *ComboBox, value *V, options iter.Seq[O]) imtui.Response {
	mem := ui.Memory()
	hint := (*value).Editable()
	bufID := b.id.With(roleTextBuf)
	text := imtui.GetOr(mem, bufID, hint)

	resp := ui.TextEdit(b.id, &text, imtui.TextEditOptions{
		Label: b.label,
		Hint:  hint,
		Width: b.width,
	})

	if !resp.HasFocus && !resp.LostFocus && text != hint {
		events.ComboBox.Resync(b.id.String(), hint)
		text = hint
		ui.RequestRepaint()
	}
	if resp.GainedFocus {
		events.ComboBox.FocusGained(b.id.String())
		text = ""
		ui.RequestRepaint()
	}
	if resp.LostFocus {
		events.ComboBox.FocusLost(b.id.String(), text)
		ui.RequestRepaint()
	}

	if resp.HasFocus || resp.LostFocus {
		if showOptions(ui, b, resp, value, options, text) {
			resp.MarkChanged()
			ui.RequestRepaint()
		}
	} else {
		if _, ok := imtui.Get[CursorPos](mem, b.id.With(roleCursorPos)); ok {
			events.ComboBox.Forget(b.id.String())
		}
		imtui.Remove[CursorPos](mem, b.id.With(roleCursorPos))
	}

	imtui.Insert(mem, bufID, text)
	return resp
}

// showOptions filters the options, moves the cursor and draws the popup. It
// reports whether a row was committed into *value.
func showOptions[V Value, O Option[V]](ui *imtui.Ui, b *ComboBox, resp imtui.Response, value *V, options iter.Seq[O], text string) bool {
	mem := ui.Memory()
	cursorID := b.id.With(roleCursorPos)
	pass := FilterOptions(options, *value, text)
	events.Filter.Pass(b.id.String(), text, pass.Total, len(pass.Shown))

	var seed *CursorPos
	if resp.GainedFocus && pass.EqualIndex >= 0 {
		seed = &CursorPos{SourceIndex: pass.EqualIndex}
		events.Cursor.Seed(b.id.String(), pass.EqualIndex)
	}
	stored, ok := imtui.Get[CursorPos](mem, cursorID)
	cursor := ResolveCursor(seed, stored, ok)

	motion := readMotion(ui)
	if motion != MotionNone {
		moved := MoveCursor(cursor, motion, pass.Shown)
		events.Cursor.Move(b.id.String(), motion.String(), cursor.SourceIndex, moved.SourceIndex)
		cursor = moved
	}
	imtui.Insert(mem, cursorID, cursor)

	row := DisplayIndex(cursor, pass.Shown)
	area := imtui.ScrollArea{ID: b.id.With(roleScroll), MaxRows: b.maxRows}
	if row >= 0 && (resp.GainedFocus || motion != MotionNone) {
		area.ScrollTo(ui, row, len(pass.Shown))
	}

	committed := -1
	ui.Popup(resp.Rect, func(ui *imtui.Ui) {
		area.ShowRows(ui, len(pass.Shown), func(ui *imtui.Ui, start, end int) {
			for i := start; i < end; i++ {
				d := pass.Shown[i]
				label := d.Option.Display(text)
				if ui.Selectable(label, d.Equals, i == row).Clicked {
					committed = i
				}
			}
		})
	})
	if committed < 0 && row >= 0 && ui.KeyPressed(ui.Keys().Enter) {
		committed = row
	}
	if committed < 0 {
		return false
	}
	d := pass.Shown[committed]
	*value = d.Option.IntoValue(text)
	events.ComboBox.Commit(b.id.String(), d.SourceIndex, text, (*value).Editable())
	return true
}

// readMotion returns the first pressed motion, checked in the order Up, Down,
// Home, End.
func readMotion(ui *imtui.Ui) Motion {
	keys := ui.Keys()
	switch {
	case ui.KeyPressed(keys.Up):
		return MotionUp
	case ui.KeyPressed(keys.Down):
		return MotionDown
	case ui.KeyPressed(keys.Home):
		return MotionHome
	case ui.KeyPressed(keys.End):
		return MotionEnd
	default:
		return MotionNone
	}
}
