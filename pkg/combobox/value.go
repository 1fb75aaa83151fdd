package combobox

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnparsable is returned by ParseText when the text does not name a value.
var ErrUnparsable = errors.New("combobox: unparsable value")

// Value is anything a combo box can be bound to.
type Value interface {
	// Editable returns the text placed in the field when it is idle.
	Editable() string
}

// Option is one candidate shown in the popup for a bound value of type V.
type Option[V any] interface {
	// FilterByText classifies the option against the typed text. The state
	// describes the options already kept earlier in the same pass.
	FilterByText(text string, state FilterState) FilterResult
	// Display returns the row label. Text is the current buffer.
	Display(text string) string
	// IntoValue returns the value committed when the option is picked.
	IntoValue(text string) V
	// EqualsValue reports whether picking the option would produce value.
	EqualsValue(value V, text string) bool
}

// FilterResult classifies an option against the typed text.
type FilterResult int

const (
	FilterNone FilterResult = iota
	FilterPartial
	FilterExact
)

func (r FilterResult) String() string {
	switch r {
	case FilterPartial:
		return "partial"
	case FilterExact:
		return "exact"
	default:
		return "none"
	}
}

// Kept reports whether an option with this result stays in the list.
func (r FilterResult) Kept() bool {
	return r == FilterPartial || r == FilterExact
}

// FilterState accumulates over a single filter pass.
type FilterState struct {
	// PrevMatches counts options kept so far.
	PrevMatches int
	// HadExact is set once any kept option matched exactly.
	HadExact bool
}

func (s FilterState) next(result FilterResult) FilterState {
	if result.Kept() {
		s.PrevMatches++
	}
	if result == FilterExact {
		s.HadExact = true
	}
	return s
}

// MatchText compares a candidate's full text with the typed input using
// Unicode case folding. Equal texts match exactly, containment is partial.
func MatchText(full, input string) FilterResult {
	fold := cases.Fold()
	f := fold.String(full)
	in := fold.String(input)
	switch {
	case f == in:
		return FilterExact
	case strings.Contains(f, in):
		return FilterPartial
	default:
		return FilterNone
	}
}

// Text is a plain string that is both a value and its own option.
type Text string

func (t Text) Editable() string { return string(t) }

func (t Text) FilterByText(text string, _ FilterState) FilterResult {
	return MatchText(string(t), text)
}

func (t Text) Display(string) string { return string(t) }

func (t Text) IntoValue(string) Text { return t }

func (t Text) EqualsValue(value Text, _ string) bool { return t == value }

// Texts yields each string as a Text option.
func Texts(items ...string) iter.Seq[Text] {
	return func(yield func(Text) bool) {
		for _, item := range items {
			if !yield(Text(item)) {
				return
			}
		}
	}
}

// Displayable is satisfied by comparable types with a canonical text form.
type Displayable interface {
	comparable
	fmt.Stringer
}

// ParseDisplay adapts a Displayable type into a Value and an Option over
// itself. Matching and editing use String; equality uses ==.
type ParseDisplay[T Displayable] struct {
	V T
}

// Of wraps v.
func Of[T Displayable](v T) ParseDisplay[T] {
	return ParseDisplay[T]{V: v}
}

func (p ParseDisplay[T]) Editable() string { return p.V.String() }

func (p ParseDisplay[T]) String() string { return p.V.String() }

func (p ParseDisplay[T]) FilterByText(text string, _ FilterState) FilterResult {
	return MatchText(p.V.String(), text)
}

func (p ParseDisplay[T]) Display(string) string { return p.V.String() }

func (p ParseDisplay[T]) IntoValue(string) ParseDisplay[T] { return p }

func (p ParseDisplay[T]) EqualsValue(value ParseDisplay[T], _ string) bool {
	return p.V == value.V
}

// Displays yields each item wrapped in ParseDisplay.
func Displays[T Displayable](items ...T) iter.Seq[ParseDisplay[T]] {
	return func(yield func(ParseDisplay[T]) bool) {
		for _, item := range items {
			if !yield(Of(item)) {
				return
			}
		}
	}
}

// ParseText builds a ParseDisplay from text using parse. Surrounding
// whitespace is ignored.
func ParseText[T Displayable](text string, parse func(string) (T, error)) (ParseDisplay[T], error) {
	v, err := parse(strings.TrimSpace(text))
	if err != nil {
		return ParseDisplay[T]{}, fmt.Errorf("%w %q: %w", ErrUnparsable, text, err)
	}
	return Of(v), nil
}
