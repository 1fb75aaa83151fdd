package combobox

import "sort"

// CursorPos tracks the highlighted row by source index so it survives
// refiltering.
type CursorPos struct {
	SourceIndex int
}

// Motion is a keyboard cursor movement.
type Motion int

const (
	MotionNone Motion = iota
	MotionHome
	MotionEnd
	MotionUp
	MotionDown
)

func (m Motion) String() string {
	switch m {
	case MotionHome:
		return "home"
	case MotionEnd:
		return "end"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	default:
		return "none"
	}
}

// ResolveCursor picks the cursor for this frame: a seed wins over the stored
// position, which wins over the first source index.
func ResolveCursor(seed *CursorPos, stored CursorPos, haveStored bool) CursorPos {
	switch {
	case seed != nil:
		return *seed
	case haveStored:
		return stored
	default:
		return CursorPos{}
	}
}

// partition returns the number of shown entries whose source index satisfies
// before. shown is sorted by source index.
func partition[O any](shown []Displayed[O], before func(int) bool) int {
	return sort.Search(len(shown), func(i int) bool {
		return !before(shown[i].SourceIndex)
	})
}

// MoveCursor applies motion against the shown entries. Up and Down wrap
// around; an empty list leaves the cursor untouched.
func MoveCursor[O any](pos CursorPos, motion Motion, shown []Displayed[O]) CursorPos {
	if len(shown) == 0 {
		return pos
	}
	first := CursorPos{SourceIndex: shown[0].SourceIndex}
	last := CursorPos{SourceIndex: shown[len(shown)-1].SourceIndex}
	switch motion {
	case MotionHome:
		return first
	case MotionEnd:
		return last
	case MotionUp:
		p := partition(shown, func(i int) bool { return i < pos.SourceIndex })
		if p == 0 {
			return last
		}
		return CursorPos{SourceIndex: shown[p-1].SourceIndex}
	case MotionDown:
		p := partition(shown, func(i int) bool { return i <= pos.SourceIndex })
		if p == len(shown) {
			return first
		}
		return CursorPos{SourceIndex: shown[p].SourceIndex}
	default:
		return pos
	}
}

// DisplayIndex maps the cursor onto a row: the first shown entry at or after
// the cursor's source index, clamped to the last row. It returns -1 when
// nothing is shown.
func DisplayIndex[O any](pos CursorPos, shown []Displayed[O]) int {
	if len(shown) == 0 {
		return -1
	}
	idx := partition(shown, func(i int) bool { return i < pos.SourceIndex })
	if idx >= len(shown) {
		idx = len(shown) - 1
	}
	return idx
}
