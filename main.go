package main

import (
	"context"
	"fmt"
	"os"

	"cardwall/internal/store"
	"cardwall/ui/tui"
)

func main() {
	client, err := store.NewInMemoryDB()
	if err != nil {
		fmt.Printf("Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	repo, err := store.NewRepo(client.DB())
	if err != nil {
		fmt.Printf("Error creating repo: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := repo.Migrate(ctx); err != nil {
		fmt.Printf("Error migrating store: %v\n", err)
		os.Exit(1)
	}
	if err := repo.Seed(ctx, store.DefaultPosts()); err != nil {
		fmt.Printf("Error seeding posts: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Start(repo, tui.DefaultConfig()); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
