package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string
	CatalogBaseURL  string
	CatalogToken    string
	CatalogCacheTTL time.Duration
	LoginTimeout    time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://reactnd-books-api.udacity.com"),
		CatalogToken:    getEnv("CATALOG_AUTH_TOKEN", "some-fake-token-1234567890"),
		CatalogCacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", 0), // 0 = cache selama proses hidup
		LoginTimeout:    getEnvAsDuration("LOGIN_TIMEOUT", 10*time.Second),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
