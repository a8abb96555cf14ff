package database

import (
	"context"
	"testing"

	"legoworld/internal/domain/photo"
)

func TestInitIsIdempotent(t *testing.T) {
	db, err := Connect("file:database_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	if err := Init(db); err != nil {
		t.Fatalf("first Init returned error: %v", err)
	}

	repo := photo.NewRepository(db)
	p := &photo.Photo{Filename: "lego_1000.jpg", CreatedAt: 1000}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Re-running schema init must not fail or touch existing rows.
	if err := Init(db); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}

	got, err := repo.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Filename != "lego_1000.jpg" || got.CreatedAt != 1000 {
		t.Fatalf("row changed after re-init: %+v", got)
	}
}
