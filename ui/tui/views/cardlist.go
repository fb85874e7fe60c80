package views

import (
	"fmt"
	"math"

	"cardwall/internal/cards"
	"cardwall/ui/tui/state"
	"cardwall/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type CardListView struct{}

func (v CardListView) Render(s state.AppState, props ViewProps) string {
	header := HeaderStyle.Width(props.Width).Render("CARDWALL // TWO-PHASE RENDER DEMO")

	if s.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			ErrorStyle.Render(fmt.Sprintf("Error: %v", s.Err)),
		)
	}

	if !s.Loaded {
		loading := lipgloss.JoinHorizontal(lipgloss.Left,
			props.SpinnerView,
			" Loading posts...",
		)
		return lipgloss.JoinVertical(lipgloss.Left, header, loading)
	}

	statusLine := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.TitleStyle.Render("Cardwall"),
		PhaseStyle.Render(fmt.Sprintf("loaded %s", s.LoadedAt.Format("15:04:05"))),
	)

	var boxes []string
	for i, post := range s.Posts {
		// Animation Logic
		dist := math.Abs(float64(i) - props.AnimCursor)
		selectionStrength := 0.0
		if dist < 1.0 {
			selectionStrength = 1.0 - dist
		}

		variants := cards.DeriveVariants(post.Position, s.Wide)
		classList := cards.ClassList(variants)

		rendered := RenderCardBox(post.Item, classList, i == props.CardCursor, selectionStrength)

		zoneID := fmt.Sprintf("card_%d_%s", i, post.Title)
		boxes = append(boxes, zone.Mark(zoneID, rendered))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, boxes...)
	phase := phaseLine(s)

	footer := lipgloss.NewStyle().Foreground(styles.Subtle).PaddingLeft(2).Render(
		"[↑/↓] Navigate • [a] About • [q] Quit",
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		statusLine,
		CopyStyle.Render("One list, two render passes. Width decides the rest."),
		list,
		phase,
		footer,
	)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// phaseLine states which pass produced the current frame. Until the first
// window size report arrives this is the static pass on screen.
func phaseLine(s state.AppState) string {
	detail := fmt.Sprintf(" (wide=%v)", s.Wide)
	if !s.Activated {
		detail = " (viewport signal pending, wide=false)"
	}
	return PhaseStyle.Render("phase: ") + PhaseBadge(s.Activated) + PhaseStyle.Render(detail)
}
