package config

import (
	"context"
	"os"
	"strconv"
	"time"
)

// StylistConfig holds the settings for the inference service behind the
// AI stylist. BaseURL may point at any OpenAI-compatible endpoint.
type StylistConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// CloudinaryConfig holds the credentials for the listing image uploads.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func LoadStylistConfig() StylistConfig {
	timeout := 30 * time.Second
	if raw := os.Getenv("STYLIST_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	return StylistConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   getEnv("STYLIST_MODEL", "gpt-4o-mini"),
		Timeout: timeout,
	}
}

func LoadCloudinaryConfig() CloudinaryConfig {
	return CloudinaryConfig{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}

// ServerAddr returns the listen address, defaulting to :8081.
func ServerAddr() string {
	return ":" + getEnv("PORT", "8081")
}

// WithTimeout bounds an upstream call to 10s, keeping the caller's
// cancellation.
func WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
