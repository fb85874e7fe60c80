package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cardwall/internal/cards"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Brand     = lipgloss.Color("#f27b24")

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(Brand)

	// CardStyle is the base box every card starts from.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(0, 1, 1, 1).
			Width(40)

	// CardFirstStyle marks the head of the list.
	CardFirstStyle = lipgloss.NewStyle().
			BorderForeground(Brand)

	// CardLastStyle marks the tail of the list.
	CardLastStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder())

	// CardLargeStyle is the wide-viewport upgrade of the first card.
	CardLargeStyle = lipgloss.NewStyle().
			Width(60).
			Bold(true)

	ClassTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666"))

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))
)

// StyleFor composes the lipgloss style for a space-joined class list, in
// token order, starting from the base card box.
func StyleFor(classList string) lipgloss.Style {
	st := lipgloss.NewStyle()
	for _, cls := range strings.Fields(classList) {
		switch cls {
		case cards.ClassCard:
			st = CardStyle
		case cards.ClassFirst:
			st = st.BorderForeground(CardFirstStyle.GetBorderTopForeground())
		case cards.ClassLast:
			st = st.Border(CardLastStyle.GetBorderStyle())
		case cards.ClassLarge:
			st = st.Width(CardLargeStyle.GetWidth()).Bold(CardLargeStyle.GetBold())
		}
	}
	return st
}
