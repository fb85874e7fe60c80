package views

import (
	"fmt"

	"cardwall/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

type AboutView struct{}

func (v AboutView) Render(s state.AppState, props ViewProps) string {
	header := HeaderStyle.Width(props.Width).Render("ABOUT")

	body := `The card list is rendered twice.

The static pass only knows list order, so it can mark the first and last
card but never the large one: the viewport width is not known yet and the
wide predicate defaults to false.

The live pass receives the width after the first frame. Once the report
arrives, the first card gains CardLarge on a wide viewport and loses it
again if the viewport narrows. No other card ever changes.`

	status := fmt.Sprintf("signal activated: %v • wide: %v", s.Activated, s.Wide)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		CopyStyle.Render(body),
		PhaseStyle.Render(status),
		lipgloss.NewStyle().Foreground(SubtleFg).PaddingLeft(2).Render("[b] Back • [q] Quit"),
	)
}
