package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"legoworld/internal/config"
	"legoworld/internal/database"
	"legoworld/internal/domain/photo"
	"legoworld/internal/storage"
)

// Demo rows for local development: placeholder blobs on disk plus matching
// metadata, spread one minute apart so the list order is obvious.
var demoSets = []struct {
	caption string
	aiName  string
	theme   string
}{
	{caption: "City set", aiName: "LEGO City Fire Truck (60331)", theme: "City"},
	{caption: "The big one", aiName: "LEGO Star Wars Millennium Falcon (75192)", theme: "Star Wars"},
	{caption: "", aiName: "Unknown LEGO Set", theme: ""},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.Connect(cfg.SQLiteFile)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := database.Init(db); err != nil {
		log.Fatal("schema init failed: ", err)
	}

	blobs, err := storage.NewLocalStore(cfg.UploadsDir)
	if err != nil {
		log.Fatal(err)
	}

	repo := photo.NewRepository(db)

	log.Println("Cleaning up old photos...")
	old, err := repo.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range old {
		if err := repo.Delete(ctx, p.ID); err != nil {
			log.Fatal(err)
		}
		_ = blobs.Delete(ctx, p.Filename)
	}

	base := time.Now().Unix() - int64(len(demoSets))*60
	for i, set := range demoSets {
		ts := base + int64(i)*60
		data := []byte(fmt.Sprintf("placeholder image %d", i))

		locator, err := blobs.Save(ctx, data, fmt.Sprintf("demo_%d.jpg", i), ts)
		if err != nil {
			log.Fatal("seed blob failed: ", err)
		}

		aiName := set.aiName
		p := &photo.Photo{
			Filename:         locator,
			Caption:          set.caption,
			CreatedAt:        ts,
			AIIdentifiedName: &aiName,
		}
		if set.theme != "" {
			theme := set.theme
			p.Theme = &theme
		}
		if err := repo.Create(ctx, p); err != nil {
			log.Fatal("seed insert failed: ", err)
		}
		log.Printf("seeded photo id=%d locator=%s", p.ID, locator)
	}

	log.Println("Done.")
}
