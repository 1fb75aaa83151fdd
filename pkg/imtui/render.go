package imtui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// styledLine is one row of output before styling is applied.
type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

func (l styledLine) render() string {
	runes := []rune(l.text)
	if l.highlightFrom > 0 && l.highlightFrom < len(runes) {
		head := string(runes[:l.highlightFrom])
		tail := string(runes[l.highlightFrom:])
		if l.prefixStyle != nil {
			head = l.prefixStyle.Render(head)
		}
		if l.style != nil {
			tail = l.style.Render(tail)
		}
		return head + tail
	}
	if l.style != nil {
		return l.style.Render(l.text)
	}
	return l.text
}

// fitText truncates text to width cells with an ellipsis and pads it with
// spaces up to width.
func fitText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

// layer is an overlay drawn on top of the base lines at an absolute position.
type layer struct {
	x, y  int
	lines []string
}

func (l layer) rect() Rect {
	w := 0
	for _, line := range l.lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return Rect{X: l.x, Y: l.y, W: w, H: len(l.lines)}
}

// compose paints layers over base in order and limits the result to height
// rows when height is positive.
func compose(base []string, layers []layer, height int) string {
	out := append([]string(nil), base...)
	for _, l := range layers {
		for i, line := range l.lines {
			row := l.y + i
			for len(out) <= row {
				out = append(out, "")
			}
			out[row] = overlay(out[row], line, l.x)
		}
	}
	return strings.Join(limitHeight(out, height), "\n")
}

// overlay replaces the cells of base starting at column x with top.
func overlay(base, top string, x int) string {
	left := ansi.Truncate(base, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(top)
	right := ""
	if ansi.StringWidth(base) > end {
		right = ansi.TruncateLeft(base, end, "")
	}
	return left + top + right
}

func limitHeight(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []string{"…"}
	}
	trimmed := make([]string, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, "…")
}
