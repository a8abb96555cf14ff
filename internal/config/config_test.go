package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "SQLITE_FILE", "PORT", "UPLOADS_DIR",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET",
		"GEMINI_API_KEY", "BACKEND_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultSQLiteFile, cfg.DSN())
	assert.Equal(t, DefaultUploadsDir, cfg.UploadsDir)
	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.False(t, cfg.UseCloudinary())
	assert.False(t, cfg.UseGemini())
}

func TestDatabaseURLSelectsPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/lego")

	cfg := Load()
	assert.Equal(t, "postgres://user:pass@db:5432/lego", cfg.DSN())
}

func TestCloudNamePresenceSelectsCloudinary(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg := Load()
	assert.True(t, cfg.UseCloudinary())
	assert.Equal(t, "demo", cfg.Cloudinary.CloudName)
}

func TestGeminiKeyEnablesClassification(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k")

	cfg := Load()
	assert.True(t, cfg.UseGemini())
}
