package combobox

import "iter"

// Displayed is an option that survived a filter pass.
type Displayed[O any] struct {
	// SourceIndex is the option's position in the unfiltered sequence.
	SourceIndex int
	Option      O
	Result      FilterResult
	// Equals is set when picking the option would reproduce the bound value.
	Equals bool
}

// FilterPass is the outcome of running every option through FilterByText.
type FilterPass[O any] struct {
	Shown []Displayed[O]
	// EqualIndex is the source index of the last option equal to the bound
	// value, or -1.
	EqualIndex int
	// Total counts every option seen, kept or not.
	Total int
}

// FilterOptions classifies options in source order against text. Each option
// sees the state accumulated by the options kept before it.
func FilterOptions[V any, O Option[V]](options iter.Seq[O], value V, text string) FilterPass[O] {
	pass := FilterPass[O]{EqualIndex: -1}
	var state FilterState
	for option := range options {
		idx := pass.Total
		pass.Total++
		equals := option.EqualsValue(value, text)
		if equals {
			pass.EqualIndex = idx
		}
		result := option.FilterByText(text, state)
		state = state.next(result)
		if !result.Kept() {
			continue
		}
		pass.Shown = append(pass.Shown, Displayed[O]{
			SourceIndex: idx,
			Option:      option,
			Result:      result,
			Equals:      equals,
		})
	}
	return pass
}

// SourceIndices lists the source index of every shown option.
func (p FilterPass[O]) SourceIndices() []int {
	out := make([]int, len(p.Shown))
	for i, d := range p.Shown {
		out[i] = d.SourceIndex
	}
	return out
}
