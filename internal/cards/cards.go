// Package cards holds the variant rule shared by the static markup pass and
// the live TUI pass: positional flags come from list order alone, the large
// variant additionally needs the viewport predicate.
package cards

import "strings"

// Class identifiers attached to rendered cards. The stylesheet and the TUI
// theme key presentational rules off these exact tokens.
const (
	ClassCard  = "Card"
	ClassFirst = "CardFirst"
	ClassLast  = "CardLast"
	ClassLarge = "CardLarge"
)

// Item is one post to be rendered as a card. Title doubles as the card's
// identity within a list; callers are expected to keep titles unique.
type Item struct {
	Title string
	Body  string
}

// Position holds the flags derivable from list order alone. These are known
// at static render time and never change afterwards.
type Position struct {
	First bool
	Last  bool
}

// Variants are the presentational flags of one card. Large is the only flag
// that depends on the viewport predicate, so it is the only one that can
// differ between the static pass and the live pass.
type Variants struct {
	First bool
	Last  bool
	Large bool
}

// Annotated pairs an item with its positional flags.
type Annotated struct {
	Item
	Position
}

// PositionOf derives the positional flags for index i in a list of length n.
func PositionOf(i, n int) Position {
	return Position{
		First: i == 0,
		Last:  i == n-1,
	}
}

// Annotate attaches positional flags to every item. An empty list yields an
// empty result. Duplicate titles are tolerated here; only render identity
// across re-renders becomes unspecified.
func Annotate(items []Item) []Annotated {
	out := make([]Annotated, 0, len(items))
	for i, it := range items {
		out = append(out, Annotated{
			Item:     it,
			Position: PositionOf(i, len(items)),
		})
	}
	return out
}

// DeriveVariants computes a card's variant flags. wide is the current value
// of the viewport predicate; before activation it is always false, which is
// what keeps the static pass free of the large variant.
func DeriveVariants(pos Position, wide bool) Variants {
	return Variants{
		First: pos.First,
		Last:  pos.Last,
		Large: wide && pos.First,
	}
}

// ClassList maps variant flags to the space-joined class identifier string.
// Token order is fixed: base, first, last, large.
func ClassList(v Variants) string {
	classes := []string{ClassCard}
	if v.First {
		classes = append(classes, ClassFirst)
	}
	if v.Last {
		classes = append(classes, ClassLast)
	}
	if v.Large {
		classes = append(classes, ClassLarge)
	}
	return strings.Join(classes, " ")
}
