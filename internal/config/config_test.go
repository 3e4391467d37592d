package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("STORAGE_PROVIDER", "")

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/gearvault", cfg.MongoURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3", cfg.StorageProvider)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_PROVIDER", "Cloudinary")
	t.Setenv("ALLOWED_ORIGINS", "https://gear.example.com, https://www.gear.example.com")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "cloudinary", cfg.StorageProvider)
	assert.Equal(t,
		[]string{"https://gear.example.com", "https://www.gear.example.com"},
		cfg.AllowedOrigins)
}
