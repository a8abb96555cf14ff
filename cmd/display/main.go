package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"legoworld/internal/client"
	"legoworld/internal/config"
)

// Display client: the TV loop. Polls /api/state on a fixed interval and
// reports the latest photo whenever it changes. Backend outages are shown
// and polling simply continues.
func main() {
	interval := flag.Duration("interval", 3*time.Second, "polling interval")
	flag.Parse()

	cfg := config.Load()
	api := client.New(cfg.BackendURL)

	fmt.Printf("Polling %s every %s\n", cfg.BackendURL, *interval)

	var lastID int64 = -1
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for ; ; <-ticker.C {
		state, err := api.State(context.Background())
		if err != nil {
			fmt.Printf("Backend unreachable (%v), retrying...\n", err)
			continue
		}

		if state.LatestPhoto == nil {
			if lastID != 0 {
				fmt.Println("No photos yet.")
				lastID = 0
			}
			continue
		}

		if state.LatestPhoto.ID == lastID {
			continue
		}
		lastID = state.LatestPhoto.ID

		p := state.LatestPhoto
		fmt.Printf("\nNow showing photo #%d of %d\n", p.ID, state.TotalCount)
		if p.AIIdentifiedName != nil {
			fmt.Printf("  %s\n", *p.AIIdentifiedName)
		}
		if p.Caption != "" {
			fmt.Printf("  %q\n", p.Caption)
		}
		fmt.Printf("  %s\n", api.PhotoURL(p))
	}
}
