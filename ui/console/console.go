package console

import (
	"fmt"
	"io"

	"cardwall/internal/cards"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// Print writes a compact one-line-per-card listing of the post list to the
// writer, with the class list each card would carry under the given
// predicate value.
func Print(w io.Writer, posts []cards.Annotated, wide bool) {
	fmt.Fprintf(w, "%s%s %s (wide=%v)%s\n", colorCyan, "■", "CARDWALL", wide, colorReset)

	for _, p := range posts {
		classes := cards.ClassList(cards.DeriveVariants(p.Position, wide))
		fmt.Fprintf(w, "  %-20s %s%s%s\n", p.Title, colorGray, classes, colorReset)
	}

	if len(posts) == 0 {
		fmt.Fprintf(w, "  %s(no posts)%s\n", colorGray, colorReset)
	}
}
