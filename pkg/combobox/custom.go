package combobox

import "iter"

const customLabel = "Custom: "

// CustomValue is either a value chosen from the candidates or free text the
// user typed.
type CustomValue[V Value] struct {
	value    V
	text     string
	isCustom bool
}

// Selected wraps a regular value.
func Selected[V Value](v V) CustomValue[V] {
	return CustomValue[V]{value: v}
}

// Custom wraps free text.
func Custom[V Value](text string) CustomValue[V] {
	return CustomValue[V]{text: text, isCustom: true}
}

func (c CustomValue[V]) Editable() string {
	if c.isCustom {
		return c.text
	}
	return c.value.Editable()
}

// Value returns the wrapped regular value and true, or the zero value and
// false for custom text.
func (c CustomValue[V]) Value() (V, bool) {
	if c.isCustom {
		var zero V
		return zero, false
	}
	return c.value, true
}

// CustomText returns the free text and true when the value is custom.
func (c CustomValue[V]) CustomText() (string, bool) {
	return c.text, c.isCustom
}

func (c CustomValue[V]) IsCustom() bool { return c.isCustom }

// CustomOption decorates an option type with one extra entry that turns the
// typed text into a custom value.
type CustomOption[V Value, O Option[V]] struct {
	option O
	custom bool
}

// Choice wraps a regular option.
func Choice[V Value, O Option[V]](o O) CustomOption[V, O] {
	return CustomOption[V, O]{option: o}
}

// CustomEntry returns the custom pseudo-option.
func CustomEntry[V Value, O Option[V]]() CustomOption[V, O] {
	return CustomOption[V, O]{custom: true}
}

func (c CustomOption[V, O]) IsCustom() bool { return c.custom }

// FilterByText hides the custom entry once any option matched exactly. It is
// offered as a partial match when other options matched, and as the exact
// match when nothing else did.
func (c CustomOption[V, O]) FilterByText(text string, state FilterState) FilterResult {
	if !c.custom {
		return c.option.FilterByText(text, state)
	}
	switch {
	case state.HadExact:
		return FilterNone
	case state.PrevMatches > 0:
		return FilterPartial
	default:
		return FilterExact
	}
}

func (c CustomOption[V, O]) Display(text string) string {
	if c.custom {
		return customLabel + text
	}
	return c.option.Display(text)
}

func (c CustomOption[V, O]) IntoValue(text string) CustomValue[V] {
	if c.custom {
		return Custom[V](text)
	}
	return Selected(c.option.IntoValue(text))
}

func (c CustomOption[V, O]) EqualsValue(value CustomValue[V], text string) bool {
	switch {
	case c.custom && value.isCustom:
		return text == value.text
	case !c.custom && !value.isCustom:
		return c.option.EqualsValue(value.value, text)
	default:
		return false
	}
}

// WithCustom wraps every option from options and appends the custom entry
// after the last one.
func WithCustom[V Value, O Option[V]](options iter.Seq[O]) iter.Seq[CustomOption[V, O]] {
	return func(yield func(CustomOption[V, O]) bool) {
		for o := range options {
			if !yield(Choice[V](o)) {
				return
			}
		}
		yield(CustomEntry[V, O]())
	}
}
