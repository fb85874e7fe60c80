package state

import (
	"time"

	"cardwall/internal/cards"
)

type Page int

const (
	PageCards Page = iota
	PageAbout
)

// AppState holds the current snapshot of the demo.
type AppState struct {
	Posts       []cards.Annotated
	Wide        bool // current value of the viewport predicate
	Activated   bool // whether the first width report has arrived
	Loaded      bool
	LoadedAt    time.Time
	Err         error
	CurrentPage Page
}
