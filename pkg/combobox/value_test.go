package combobox

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

type continent int

const (
	africa continent = iota
	america
	antarctica
	eurasia
	oceania
)

var continentNames = [...]string{"Africa", "America", "Antarctica", "Eurasia", "Oceania"}

func (c continent) String() string { return continentNames[c] }

func parseContinent(s string) (continent, error) {
	for i, name := range continentNames {
		if name == s {
			return continent(i), nil
		}
	}
	return 0, fmt.Errorf("no continent named %q", s)
}

func allContinents() []continent {
	return []continent{africa, america, antarctica, eurasia, oceania}
}

func TestMatchText(t *testing.T) {
	cases := []struct {
		full, input string
		want        FilterResult
	}{
		{"Antarctica", "ant", FilterPartial},
		{"Antarctica", "ANT", FilterPartial},
		{"Antarctica", "antarctica", FilterExact},
		{"Antarctica", "", FilterPartial},
		{"", "", FilterExact},
		{"Antarctica", "eur", FilterNone},
		{"École", "éCOLE", FilterExact},
		{"Eurasia", "rAs", FilterPartial},
	}
	for _, tc := range cases {
		if got := MatchText(tc.full, tc.input); got != tc.want {
			t.Fatalf("MatchText(%q, %q): expected %s, got %s", tc.full, tc.input, tc.want, got)
		}
	}
}

func TestTextIsOwnOption(t *testing.T) {
	v := Text("apple")
	if v.Editable() != "apple" {
		t.Fatalf("expected editable apple, got %q", v.Editable())
	}
	if got := v.IntoValue("whatever"); got != v {
		t.Fatalf("expected IntoValue to return itself, got %q", got)
	}
	if !v.EqualsValue(Text("apple"), "") || v.EqualsValue(Text("pear"), "") {
		t.Fatalf("unexpected EqualsValue results")
	}
	if v.Display("typed") != "apple" {
		t.Fatalf("expected display to ignore the buffer")
	}
}

func TestParseDisplayRoundTrip(t *testing.T) {
	for _, c := range allContinents() {
		v := Of(c)
		parsed, err := ParseText(v.Editable(), parseContinent)
		if err != nil {
			t.Fatalf("parse %q: %v", v.Editable(), err)
		}
		if !v.EqualsValue(parsed, "") {
			t.Fatalf("expected %s to round trip, got %s", c, parsed)
		}
	}
}

func TestParseTextWrapsFailure(t *testing.T) {
	_, err := ParseText("Atlantis", parseContinent)
	if err == nil {
		t.Fatalf("expected error for unknown continent")
	}
	if !errors.Is(err, ErrUnparsable) {
		t.Fatalf("expected ErrUnparsable, got %v", err)
	}
}

func TestCustomValueAccessors(t *testing.T) {
	sel := Selected(Text("Africa"))
	if sel.IsCustom() || sel.Editable() != "Africa" {
		t.Fatalf("unexpected selected value %+v", sel)
	}
	if v, ok := sel.Value(); !ok || v != "Africa" {
		t.Fatalf("expected wrapped Africa, got %q %v", v, ok)
	}
	custom := Custom[Text]("zz")
	if !custom.IsCustom() || custom.Editable() != "zz" {
		t.Fatalf("unexpected custom value %+v", custom)
	}
	if _, ok := custom.Value(); ok {
		t.Fatalf("custom value must not expose a regular value")
	}
	if text, ok := custom.CustomText(); !ok || text != "zz" {
		t.Fatalf("expected custom text zz, got %q %v", text, ok)
	}
}

func TestCustomOptionConversion(t *testing.T) {
	entry := CustomEntry[Text, Text]()
	if got := entry.Display("zz"); got != "Custom: zz" {
		t.Fatalf("expected custom label, got %q", got)
	}
	v := entry.IntoValue("zz")
	if text, ok := v.CustomText(); !ok || text != "zz" {
		t.Fatalf("expected Custom(zz), got %+v", v)
	}
	if !entry.EqualsValue(Custom[Text]("zz"), "zz") {
		t.Fatalf("expected custom entry to equal matching custom value")
	}
	if entry.EqualsValue(Custom[Text]("zz"), "z") {
		t.Fatalf("expected mismatch when text differs from payload")
	}
	if entry.EqualsValue(Selected(Text("zz")), "zz") {
		t.Fatalf("custom entry must never equal a selected value")
	}

	choice := Choice[Text](Text("Africa"))
	if !choice.EqualsValue(Selected(Text("Africa")), "") {
		t.Fatalf("expected choice to equal its selected value")
	}
	if choice.EqualsValue(Custom[Text]("Africa"), "Africa") {
		t.Fatalf("choice must never equal a custom value")
	}
	if v, ok := choice.IntoValue("").Value(); !ok || v != "Africa" {
		t.Fatalf("expected Selected(Africa), got %q %v", v, ok)
	}
}

func TestCustomEntryClassification(t *testing.T) {
	entry := CustomEntry[Text, Text]()
	cases := []struct {
		state FilterState
		want  FilterResult
	}{
		{FilterState{}, FilterExact},
		{FilterState{PrevMatches: 2}, FilterPartial},
		{FilterState{PrevMatches: 1, HadExact: true}, FilterNone},
	}
	for _, tc := range cases {
		if got := entry.FilterByText("x", tc.state); got != tc.want {
			t.Fatalf("state %+v: expected %s, got %s", tc.state, tc.want, got)
		}
	}
}

func TestWithCustomAppendsOneEntryLast(t *testing.T) {
	opts := slices.Collect(WithCustom[Text](Texts("a", "b")))
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	for i, o := range opts[:2] {
		if o.IsCustom() {
			t.Fatalf("option %d should not be custom", i)
		}
	}
	if !opts[2].IsCustom() {
		t.Fatalf("expected custom entry last")
	}

	var first []CustomOption[Text, Text]
	for o := range WithCustom[Text](Texts("a", "b")) {
		first = append(first, o)
		break
	}
	if len(first) != 1 || first[0].IsCustom() {
		t.Fatalf("expected early stop to yield only the first option")
	}
}
