package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultPort       = "5001"
	DefaultSQLiteFile = "lego.db"
	DefaultUploadsDir = "./uploads"
	DefaultBackendURL = "http://localhost:5001"
)

// Cloudinary holds remote blob storage credentials.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Config is resolved once at startup. Backend selection (database, blob
// storage, classification) is decided here and never re-checked per request.
type Config struct {
	DatabaseURL  string // postgres DSN; empty selects the embedded sqlite file
	SQLiteFile   string
	Port         string
	UploadsDir   string
	Cloudinary   Cloudinary
	GeminiAPIKey string
	BackendURL   string // used by the client binaries
}

// Load reads configuration from the environment. A .env file is honored
// when present and silently skipped otherwise.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLiteFile:  getenv("SQLITE_FILE", DefaultSQLiteFile),
		Port:        getenv("PORT", DefaultPort),
		UploadsDir:  getenv("UPLOADS_DIR", DefaultUploadsDir),
		Cloudinary: Cloudinary{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		BackendURL:   getenv("BACKEND_URL", DefaultBackendURL),
	}
}

// DSN returns the database connection string for database.Connect.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.SQLiteFile
}

// UseCloudinary reports whether remote blob storage is configured.
func (c *Config) UseCloudinary() bool {
	return c.Cloudinary.CloudName != ""
}

// UseGemini reports whether AI classification is configured.
func (c *Config) UseGemini() bool {
	return c.GeminiAPIKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
