package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Runs against a real database when TEST_DATABASE_URL is set.
func TestRecordAndList(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	r := Result{
		TableID:    uuid.NewString(),
		Won:        true,
		Moves:      57,
		CardsHome:  40,
		StartedAt:  now.Add(-5 * time.Minute),
		FinishedAt: now,
	}
	id, err := db.RecordResult(ctx, r)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := db.RecentResults(ctx, 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, g := range got {
		if g.ID == id {
			if g.TableID != r.TableID || !g.Won || g.Moves != 57 || g.CardsHome != 40 {
				t.Errorf("stored %+v, want %+v", g, r)
			}
			return
		}
	}
	t.Errorf("result %d not listed", id)
}

func TestSchemaEmbedded(t *testing.T) {
	b, err := schema.ReadFile("schema.sql")
	if err != nil || len(b) == 0 {
		t.Fatalf("schema.sql: %v", err)
	}
}
