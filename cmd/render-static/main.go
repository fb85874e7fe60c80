// render-static prints the static pass of the demo: the HTML document a
// server would send before any client-side width information exists. Compare
// its class attributes with the live TUI on a wide terminal to see the
// CardLarge upgrade the static pass can never contain.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"cardwall/internal/cards"
	"cardwall/internal/markup"
	"cardwall/internal/store"
	"cardwall/ui/console"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "DuckDB file to load posts from (default: in-memory with seeded fixtures)")
		out     = flag.String("o", "", "write the document to a file instead of stdout")
		classes = flag.Bool("classes", false, "print a compact class listing instead of the document")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := loadPosts(ctx, *dbPath)
	if err != nil {
		log.Fatalf("Failed to load posts: %v", err)
	}

	if *classes {
		// Static pass: the wide predicate has not resolved, so it is false.
		console.Print(os.Stdout, cards.Annotate(posts), false)
		return
	}

	doc, err := markup.Render(markup.Page{Title: "Cardwall", Posts: posts})
	if err != nil {
		log.Fatalf("Failed to render document: %v", err)
	}

	if *out == "" {
		if _, err := os.Stdout.WriteString(doc + "\n"); err != nil {
			log.Fatalf("Failed to write document: %v", err)
		}
		return
	}
	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
}

func loadPosts(ctx context.Context, dbPath string) ([]cards.Item, error) {
	client, err := store.NewDuckDBClient(dbPath)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	repo, err := store.NewRepo(client.DB())
	if err != nil {
		return nil, err
	}
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}

	// A fresh in-memory database has nothing to show; seed the fixtures.
	if dbPath == "" {
		if err := repo.Seed(ctx, store.DefaultPosts()); err != nil {
			return nil, err
		}
	}

	return repo.ListPosts(ctx)
}
