package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"legoworld/internal/config"
	"legoworld/internal/database"
	"legoworld/internal/domain/photo"
	"legoworld/internal/middleware"
	"legoworld/internal/storage"
	"legoworld/internal/vision"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Init(db); err != nil {
		log.Fatal("schema init failed: ", err)
	}

	var blobs storage.BlobStore
	if cfg.UseCloudinary() {
		blobs, err = storage.NewCloudinaryStore(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
		)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("storage: Cloudinary configured")
	} else {
		blobs, err = storage.NewLocalStore(cfg.UploadsDir)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("storage: local uploads dir:", cfg.UploadsDir)
	}

	var identifier vision.Identifier = vision.Disabled{}
	if cfg.UseGemini() {
		gem, err := vision.NewGemini(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("vision: Gemini init failed, identification disabled: %v", err)
		} else {
			identifier = gem
			log.Println("vision: Gemini configured")
		}
	} else {
		log.Println("vision: GEMINI_API_KEY not set, identification disabled")
	}

	repo := photo.NewRepository(db)
	service := photo.NewService(repo, blobs, identifier)
	handler := photo.NewHandler(service)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	photo.RegisterRoutes(r, handler)

	log.Println("server: listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
