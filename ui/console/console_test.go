package console

import (
	"strings"
	"testing"

	"cardwall/internal/cards"
)

func TestPrintListsEveryCard(t *testing.T) {
	posts := cards.Annotate([]cards.Item{
		{Title: "Post 1", Body: "First post"},
		{Title: "Post 2", Body: "Second post"},
	})

	var sb strings.Builder
	Print(&sb, posts, false)
	out := sb.String()

	if !strings.Contains(out, "Post 1") || !strings.Contains(out, "Post 2") {
		t.Errorf("Expected both posts in output:\n%s", out)
	}
	if !strings.Contains(out, "Card CardFirst") {
		t.Errorf("Expected first card classes in output:\n%s", out)
	}
	if strings.Contains(out, "CardLarge") {
		t.Errorf("Expected no large variant on a narrow listing:\n%s", out)
	}
}

func TestPrintWideListing(t *testing.T) {
	posts := cards.Annotate([]cards.Item{{Title: "Only", Body: "Lonely"}})

	var sb strings.Builder
	Print(&sb, posts, true)
	out := sb.String()

	if !strings.Contains(out, "Card CardFirst CardLast CardLarge") {
		t.Errorf("Expected full class list for a single wide card:\n%s", out)
	}
}

func TestPrintEmptyList(t *testing.T) {
	var sb strings.Builder
	Print(&sb, nil, false)

	if !strings.Contains(sb.String(), "(no posts)") {
		t.Errorf("Expected empty-list marker, got:\n%s", sb.String())
	}
}
