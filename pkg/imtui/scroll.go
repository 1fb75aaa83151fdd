package imtui

import "fmt"

// ScrollArea shows a window of at most MaxRows rows out of a longer list and
// keeps its offset in Memory under ID.
type ScrollArea struct {
	ID      ID
	MaxRows int
}

type scrollState struct {
	Offset int
}

func (s ScrollArea) visible(total int) int {
	if s.MaxRows <= 0 || total < s.MaxRows {
		return total
	}
	return s.MaxRows
}

func (s ScrollArea) clamp(offset, total int) int {
	limit := total - s.visible(total)
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Offset returns the stored first visible row.
func (s ScrollArea) Offset(ui *Ui) int {
	return GetOr(ui.ctx.mem, s.ID, scrollState{}).Offset
}

// ScrollTo moves the window the least amount needed for row to be visible.
func (s ScrollArea) ScrollTo(ui *Ui, row, total int) {
	st := GetOr(ui.ctx.mem, s.ID, scrollState{})
	visible := s.visible(total)
	if visible > 0 {
		if row < st.Offset {
			st.Offset = row
		} else if row >= st.Offset+visible {
			st.Offset = row - visible + 1
		}
	}
	st.Offset = s.clamp(st.Offset, total)
	Insert(ui.ctx.mem, s.ID, st)
}

// ShowRows calls add with the half-open range of rows to draw. Only those
// rows are materialized. The mouse wheel scrolls the window when the pointer
// is over it.
func (s ScrollArea) ShowRows(ui *Ui, total int, add func(ui *Ui, start, end int)) {
	st := GetOr(ui.ctx.mem, s.ID, scrollState{})
	visible := s.visible(total)
	area := Rect{X: ui.x, Y: ui.next(), W: ui.width, H: visible}
	if in := ui.f.in; in.wheel != 0 && area.Contains(in.at.X, in.at.Y) {
		st.Offset += in.wheel
	}
	st.Offset = s.clamp(st.Offset, total)
	Insert(ui.ctx.mem, s.ID, st)

	add(ui, st.Offset, st.Offset+visible)
	if visible < total {
		info := fmt.Sprintf("%d-%d of %d", st.Offset+1, st.Offset+visible, total)
		ui.styled(fitText(info, ui.width), ui.ctx.styles.ScrollInfo)
	}
}
