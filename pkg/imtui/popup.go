package imtui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const minPopupWidth = 12

// Selectable draws one list row. Highlighted marks the keyboard cursor,
// selected marks the row matching the current value.
func (ui *Ui) Selectable(label string, selected, highlighted bool) Response {
	styles := ui.ctx.styles
	line := styledLine{
		text:          fitText("▌ "+label, ui.width),
		style:         styles.Row,
		prefixStyle:   styles.RowIndicator,
		highlightFrom: 1,
	}
	if selected {
		line.style = styles.RowSelected
	}
	if highlighted {
		line.style = styles.RowCursor
		line.prefixStyle = styles.RowCursorIndicator
	}
	rect := ui.add(line.render())
	rect.W = max(rect.W, ui.width)
	resp := Response{Rect: rect}
	if c := ui.f.in.click; c != nil && rect.Contains(c.X, c.Y) {
		resp.Clicked = true
	}
	return resp
}

// Popup draws add's rows in a bordered box directly below anchor, on top of
// anything the frame draws there. The box is at least as wide as anchor and
// is clipped to the viewport width when that is known.
func (ui *Ui) Popup(anchor Rect, add func(ui *Ui)) Rect {
	inner := max(anchor.W, minPopupWidth)
	if ui.ctx.width > 0 {
		if avail := ui.ctx.width - anchor.X - 2; avail > 0 && inner > avail {
			inner = avail
		}
	}
	top := anchor.Y + anchor.H
	child := ui.child(anchor.X+1, top+1, inner)
	add(child)
	if len(child.lines) == 0 {
		child.add("")
	}
	for i, line := range child.lines {
		if w := ansi.StringWidth(line); w < inner {
			child.lines[i] = line + strings.Repeat(" ", inner-w)
		}
	}
	box := ui.ctx.styles.PopupBorder.Render(strings.Join(child.lines, "\n"))
	l := layer{x: anchor.X, y: top, lines: strings.Split(box, "\n")}
	ui.f.layers = append(ui.f.layers, l)
	r := l.rect()
	ui.f.next.popups = append(ui.f.next.popups, r)
	return r
}
