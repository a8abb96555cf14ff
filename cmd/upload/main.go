package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"legoworld/internal/client"
	"legoworld/internal/config"
	"legoworld/internal/domain/photo"
)

// Upload client: posts a photo with an optional caption, or renders the
// current collection. A dead backend is reported, not fatal.
func main() {
	var (
		file    = flag.String("file", "", "path of the image to upload")
		caption = flag.String("caption", "", "optional caption")
		list    = flag.Bool("list", false, "list the collection instead of uploading")
		remove  = flag.Int64("delete", 0, "delete the photo with this id")
	)
	flag.Parse()

	cfg := config.Load()
	api := client.New(cfg.BackendURL)
	ctx := context.Background()

	switch {
	case *remove != 0:
		if err := api.Delete(ctx, *remove); err != nil {
			exitUnreachable(cfg.BackendURL, err)
		}
		fmt.Printf("Deleted photo %d\n", *remove)

	case *list:
		photos, err := api.List(ctx)
		if err != nil {
			exitUnreachable(cfg.BackendURL, err)
		}
		if len(photos) == 0 {
			fmt.Println("No photos yet.")
			return
		}
		for _, p := range photos {
			printPhoto(api, p)
		}

	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatal(err)
		}
		p, err := api.Upload(ctx, *file, data, *caption)
		if err != nil {
			exitUnreachable(cfg.BackendURL, err)
		}
		fmt.Println("Uploaded:")
		printPhoto(api, p)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printPhoto(api *client.Client, p *photo.Photo) {
	when := time.Unix(p.CreatedAt, 0).Format("2006-01-02 15:04:05")
	fmt.Printf("  #%d  %s", p.ID, when)
	if p.Caption != "" {
		fmt.Printf("  %q", p.Caption)
	}
	if p.AIIdentifiedName != nil {
		fmt.Printf("  [%s]", *p.AIIdentifiedName)
	}
	fmt.Printf("\n      %s\n", api.PhotoURL(p))
}

func exitUnreachable(backendURL string, err error) {
	fmt.Fprintf(os.Stderr, "Cannot talk to the backend at %s: %v\n", backendURL, err)
	fmt.Fprintln(os.Stderr, "Check that the server is running (cmd/api) and BACKEND_URL is correct.")
	os.Exit(1)
}
