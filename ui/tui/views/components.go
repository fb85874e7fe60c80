package views

import (
	"cardwall/internal/cards"
	"cardwall/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

var (
	SubtleFg = lipgloss.Color("#666")

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(styles.Brand).
			Padding(0, 1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAA")).
			PaddingLeft(2).
			MarginBottom(1)

	PhaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			PaddingLeft(2)
)

// PhaseBadge colors the pass name: gold while the viewport signal is still
// pending, green once the live pass has begun.
func PhaseBadge(activated bool) string {
	sStyle := styles.StatusStyle
	if !activated {
		return sStyle.Foreground(lipgloss.Color("220")).Render("static") // Gold
	}
	return sStyle.Foreground(lipgloss.Color("46")).Render("live") // Green
}

// RenderCardBox renders one card with the style selected by its class list.
// selectionStrength in [0,1] pops the box out to the right as the animated
// cursor approaches it.
func RenderCardBox(item cards.Item, classList string, selected bool, selectionStrength float64) string {
	boxStyle := styles.StyleFor(classList).
		MarginLeft(2 + int(selectionStrength*2))

	if selected {
		boxStyle = boxStyle.Foreground(lipgloss.Color("#FFF"))
	} else {
		boxStyle = boxStyle.Foreground(lipgloss.Color("#AAA"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(item.Title),
		item.Body,
		styles.ClassTagStyle.Render(classList),
	)

	return boxStyle.Render(content)
}
