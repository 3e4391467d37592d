package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI  string
	RedisURI  string
	JWTSecret string
	Port      string

	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	Environment    string   // ENV: production, development, etc.

	// Blob storage. STORAGE_PROVIDER selects the backend: "s3" (default) or "cloudinary".
	StorageProvider string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string // optional, for MinIO-style deployments
	S3AccessKey     string
	S3SecretKey     string

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{getEnv("FRONTEND_URL", "http://localhost:3000")}
	}

	return &Config{
		MongoURI:  getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/gearvault")),
		RedisURI:  getEnv("REDIS_URI", "redis://localhost:6379/0"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:      getEnv("PORT", "8080"),

		AllowedOrigins: allowedOrigins,
		Environment:    env,

		StorageProvider: strings.ToLower(getEnv("STORAGE_PROVIDER", "s3")),
		S3Bucket:        getEnv("AWS_BUCKET_NAME", ""),
		S3Region:        getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),

		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
