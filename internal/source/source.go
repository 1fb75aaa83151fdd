// Package source provides the candidate lists combopick can pick from.
package source

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/atomicstack/combopick/internal/format/table"
	"github.com/atomicstack/combopick/pkg/combobox"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnknownSource is returned for a source name Lookup does not know.
var ErrUnknownSource = errors.New("unknown source")

// Kind names a candidate provider.
type Kind string

const (
	KindStatic     Kind = "static"
	KindFile       Kind = "file"
	KindTmux       Kind = "tmux"
	KindContinents Kind = "continents"
)

// Kinds lists every provider in the order shown by --help.
func Kinds() []Kind {
	return []Kind{KindStatic, KindFile, KindTmux, KindContinents}
}

// ParseKind maps a --source value to its Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Kinds(), k) {
		return k, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownSource, name)
}

// Entry is a named candidate with an optional detail column. It is both the
// value bound to the picker and the option offered for it.
type Entry struct {
	Name   string
	Detail string
	label  string
}

func (e Entry) Editable() string { return e.Name }

func (e Entry) FilterByText(text string, _ combobox.FilterState) combobox.FilterResult {
	return combobox.MatchText(e.Name, text)
}

// Display returns the aligned row label when the entry came from Align.
func (e Entry) Display(string) string {
	if e.label != "" {
		return e.label
	}
	return e.Name
}

func (e Entry) IntoValue(string) Entry { return e }

func (e Entry) EqualsValue(value Entry, _ string) bool {
	return value.Name == e.Name
}

// Named builds detail-less entries.
func Named(names ...string) []Entry {
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = Entry{Name: name}
	}
	return out
}

// Align lays out name and detail in two columns so rows line up in the popup.
func Align(entries []Entry) []Entry {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Detail}
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.label = lines[i]
		out[i] = e
	}
	return out
}

// Seq yields entries in order.
func Seq(entries []Entry) iter.Seq[Entry] {
	return slices.Values(entries)
}

// Find returns the entry called name.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Closest returns the candidate nearest to text by edit distance, ignoring
// case. Exact matches are not reported.
func Closest(text string, candidates []string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len(candidates) == 0 {
		return "", false
	}
	best, bestDist := "", -1
	for _, c := range candidates {
		if strings.EqualFold(c, text) {
			return "", false
		}
		d := fuzzy.LevenshteinDistance(strings.ToLower(text), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}
