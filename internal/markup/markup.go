// Package markup produces the static pass of the demo: an HTML document for
// the post list, rendered with only server-known data. The viewport predicate
// has not activated at this point, so no card can carry the large variant
// here; that upgrade belongs to the live pass.
package markup

import (
	_ "embed"
	"fmt"

	"cardwall/internal/cards"

	"github.com/rohanthewiz/element"
)

//go:embed markup.css
var Stylesheet string

// Page is the document shell around the card list.
type Page struct {
	Title string
	Posts []cards.Item
}

// Render implements element.Component for the full document.
func (p Page) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(Stylesheet),
		),
		b.Body().R(
			b.H1().T(p.Title),
			b.Div("class", "Layout").R(
				element.RenderComponents(b, listComponents(p.Posts)...),
			),
		),
	)
	return nil
}

// CardComponent renders one card. Variants are derived with an inactive
// viewport signal, which pins the predicate to its default.
type CardComponent struct {
	Item     cards.Item
	Position cards.Position
}

// Render implements element.Component for one card.
func (c CardComponent) Render(b *element.Builder) any {
	v := cards.DeriveVariants(c.Position, false)
	b.Div("class", cards.ClassList(v)).R(
		b.H2().T(c.Item.Title),
		b.P().T(c.Item.Body),
	)
	return nil
}

func listComponents(posts []cards.Item) []element.Component {
	annotated := cards.Annotate(posts)
	comps := make([]element.Component, 0, len(annotated))
	for _, a := range annotated {
		comps = append(comps, CardComponent{Item: a.Item, Position: a.Position})
	}
	return comps
}

// Render produces the static markup document for the given page.
func Render(p Page) (string, error) {
	b := element.NewBuilder()
	if err, ok := p.Render(b).(error); ok && err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return b.String(), nil
}
