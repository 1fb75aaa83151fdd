package combobox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterOptionsKeepsSourceOrder(t *testing.T) {
	pass := FilterOptions(Texts("Africa", "America", "Antarctica", "Eurasia"), Text(""), "ica")
	want := []int{0, 1, 2}
	if diff := cmp.Diff(want, pass.SourceIndices()); diff != "" {
		t.Fatalf("unexpected source indices (-want +got):\n%s", diff)
	}
	if pass.Total != 4 {
		t.Fatalf("expected total 4, got %d", pass.Total)
	}
	for _, d := range pass.Shown {
		if d.Result != FilterPartial {
			t.Fatalf("expected partial for %s, got %s", d.Option, d.Result)
		}
	}
}

func TestFilterOptionsMarksEqualEntries(t *testing.T) {
	pass := FilterOptions(Displays(allContinents()...), Of(eurasia), "")
	if pass.EqualIndex != 3 {
		t.Fatalf("expected equal index 3, got %d", pass.EqualIndex)
	}
	for _, d := range pass.Shown {
		if d.Equals != (d.SourceIndex == 3) {
			t.Fatalf("unexpected Equals=%v for %s", d.Equals, d.Option)
		}
	}

	none := FilterOptions(Displays(allContinents()...), Of(eurasia), "oce")
	if none.EqualIndex != 3 {
		t.Fatalf("equality is tracked for hidden options too, got %d", none.EqualIndex)
	}
	if len(none.Shown) != 1 || none.Shown[0].Equals {
		t.Fatalf("expected only Oceania shown, got %+v", none.Shown)
	}
}

func TestFilterCustomEntryPrecedence(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		want    []int
		results []FilterResult
	}{
		{"partial matches keep custom as partial", "a", []int{0, 1, 2}, []FilterResult{FilterPartial, FilterPartial, FilterPartial}},
		{"exact match hides custom", "africa", []int{0}, []FilterResult{FilterExact}},
		{"no match makes custom exact", "zz", []int{2}, []FilterResult{FilterExact}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			options := WithCustom[Text](Texts("Africa", "America"))
			pass := FilterOptions(options, Selected(Text("Africa")), tc.text)
			if diff := cmp.Diff(tc.want, pass.SourceIndices()); diff != "" {
				t.Fatalf("unexpected shown set (-want +got):\n%s", diff)
			}
			got := make([]FilterResult, len(pass.Shown))
			for i, d := range pass.Shown {
				got[i] = d.Result
			}
			if diff := cmp.Diff(tc.results, got); diff != "" {
				t.Fatalf("unexpected results (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterCustomOnlyWhenNoCandidates(t *testing.T) {
	pass := FilterOptions(WithCustom[Text](Texts()), Selected(Text("")), "")
	if len(pass.Shown) != 1 || !pass.Shown[0].Option.IsCustom() {
		t.Fatalf("expected lone custom entry, got %+v", pass.Shown)
	}
	if pass.Shown[0].Result != FilterExact {
		t.Fatalf("expected exact, got %s", pass.Shown[0].Result)
	}
}

func TestFilterStateAccumulates(t *testing.T) {
	var s FilterState
	s = s.next(FilterNone)
	s = s.next(FilterPartial)
	if s.PrevMatches != 1 || s.HadExact {
		t.Fatalf("unexpected state after partial: %+v", s)
	}
	s = s.next(FilterExact)
	if s.PrevMatches != 2 || !s.HadExact {
		t.Fatalf("unexpected state after exact: %+v", s)
	}
}
