package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Heading            *lipgloss.Style
	Label              *lipgloss.Style
	Field              *lipgloss.Style
	FieldFocused       *lipgloss.Style
	FieldText          *lipgloss.Style
	Placeholder        *lipgloss.Style
	Cursor             *lipgloss.Style
	Row                *lipgloss.Style
	RowIndicator       *lipgloss.Style
	RowCursor          *lipgloss.Style
	RowCursorIndicator *lipgloss.Style
	RowSelected        *lipgloss.Style
	PopupBorder        *lipgloss.Style
	ScrollInfo         *lipgloss.Style
	Status             *lipgloss.Style
	Error              *lipgloss.Style
	Help               *lipgloss.Style
}

const defaultAccent = "33"

var defaultStyles = build(defaultAccent)

func build(accent string) Styles {
	a := lipgloss.Color(accent)
	return Styles{
		Heading: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		Label: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		),
		Field: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		FieldFocused: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true),
		),
		FieldText: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		),
		Placeholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(a),
		),
		Row: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		RowIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		),
		RowCursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
		),
		RowCursorIndicator: ptr(
			lipgloss.NewStyle().Foreground(a).Background(lipgloss.Color("238")),
		),
		RowSelected: ptr(
			lipgloss.NewStyle().Foreground(a),
		),
		PopupBorder: ptr(
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		),
		ScrollInfo: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		),
		Status: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Help: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
	}
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// WithAccent returns a style set using accent for the cursor and highlights.
// An empty accent yields the default set.
func WithAccent(accent string) *Styles {
	if accent == "" || accent == defaultAccent {
		return Default()
	}
	styles := build(accent)
	return &styles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
