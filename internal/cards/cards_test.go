package cards

import (
	"strings"
	"testing"
)

func TestAnnotateEmptyList(t *testing.T) {
	out := Annotate(nil)
	if len(out) != 0 {
		t.Errorf("Expected zero annotated items for empty list, got %d", len(out))
	}
}

func TestAnnotatePositionalFlags(t *testing.T) {
	items := []Item{
		{Title: "Post 1", Body: "First post"},
		{Title: "Post 2", Body: "Second post"},
		{Title: "Post 3", Body: "Third post"},
	}

	out := Annotate(items)
	if len(out) != 3 {
		t.Fatalf("Expected 3 annotated items, got %d", len(out))
	}

	firsts, lasts := 0, 0
	for _, a := range out {
		if a.First {
			firsts++
		}
		if a.Last {
			lasts++
		}
	}
	if firsts != 1 {
		t.Errorf("Expected exactly one first card, got %d", firsts)
	}
	if lasts != 1 {
		t.Errorf("Expected exactly one last card, got %d", lasts)
	}
	if !out[0].First || out[0].Last {
		t.Errorf("Expected head item to be first only, got %+v", out[0].Position)
	}
	if !out[2].Last || out[2].First {
		t.Errorf("Expected tail item to be last only, got %+v", out[2].Position)
	}
	if out[1].First || out[1].Last {
		t.Errorf("Expected middle item to carry no positional flags, got %+v", out[1].Position)
	}
}

func TestAnnotateSingleItem(t *testing.T) {
	out := Annotate([]Item{{Title: "Only", Body: "Lonely"}})
	if len(out) != 1 {
		t.Fatalf("Expected 1 annotated item, got %d", len(out))
	}
	if !out[0].First || !out[0].Last {
		t.Errorf("Expected single item to be both first and last, got %+v", out[0].Position)
	}
}

func TestAnnotateDuplicateTitles(t *testing.T) {
	items := []Item{
		{Title: "Post", Body: "First copy"},
		{Title: "Post", Body: "Second copy"},
	}

	out := Annotate(items)
	if len(out) != 2 {
		t.Fatalf("Expected duplicate titles to be tolerated, got %d items", len(out))
	}
	if out[0].Body != "First copy" || out[1].Body != "Second copy" {
		t.Errorf("Expected list order preserved under duplicate titles, got %+v", out)
	}
	// Positional flags come from index alone, never from identity.
	if !out[0].First || out[0].Last {
		t.Errorf("Expected head duplicate to be first only, got %+v", out[0].Position)
	}
	if !out[1].Last || out[1].First {
		t.Errorf("Expected tail duplicate to be last only, got %+v", out[1].Position)
	}
}

func TestAnnotateEmptyFields(t *testing.T) {
	out := Annotate([]Item{{}})
	if len(out) != 1 {
		t.Fatalf("Expected an item with empty fields to be annotated, got %d items", len(out))
	}
	if out[0].Title != "" || out[0].Body != "" {
		t.Errorf("Expected empty fields to pass through unchanged, got %+v", out[0].Item)
	}
}

func TestClassListOrdering(t *testing.T) {
	cases := []struct {
		name string
		v    Variants
		want string
	}{
		{"base", Variants{}, "Card"},
		{"first", Variants{First: true}, "Card CardFirst"},
		{"last", Variants{Last: true}, "Card CardLast"},
		{"first and last", Variants{First: true, Last: true}, "Card CardFirst CardLast"},
		{"first large", Variants{First: true, Large: true}, "Card CardFirst CardLarge"},
		{"all", Variants{First: true, Last: true, Large: true}, "Card CardFirst CardLast CardLarge"},
	}

	for _, tc := range cases {
		got := ClassList(tc.v)
		if got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
		if strings.Contains(got, "  ") || strings.TrimSpace(got) != got {
			t.Errorf("%s: class list %q has stray whitespace", tc.name, got)
		}
	}
}

func TestDeriveVariantsLargeRequiresFirst(t *testing.T) {
	positions := []Position{
		{First: true, Last: false},
		{First: false, Last: true},
		{First: false, Last: false},
		{First: true, Last: true},
	}

	for _, pos := range positions {
		v := DeriveVariants(pos, true)
		if v.Large && !v.First {
			t.Errorf("Large must imply First, got %+v from %+v", v, pos)
		}
		if pos.First && !v.Large {
			t.Errorf("Expected first card to be large on a wide viewport, got %+v", v)
		}
	}
}

func TestDeriveVariantsNarrowNeverLarge(t *testing.T) {
	v := DeriveVariants(Position{First: true, Last: true}, false)
	if v.Large {
		t.Errorf("Expected no large variant on a narrow viewport, got %+v", v)
	}
	if ClassList(v) != "Card CardFirst CardLast" {
		t.Errorf("Unexpected class list %q", ClassList(v))
	}
}

func TestPositionalFlagsStableAcrossPasses(t *testing.T) {
	items := []Item{
		{Title: "Post 1", Body: "First post"},
		{Title: "Post 2", Body: "Second post"},
	}

	staticPass := Annotate(items)
	livePass := Annotate(items)

	for i := range staticPass {
		if staticPass[i].Position != livePass[i].Position {
			t.Errorf("Positional flags flipped between passes at index %d: %+v vs %+v",
				i, staticPass[i].Position, livePass[i].Position)
		}
	}
}
