package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenRouter gateway
	OpenRouterAPIKey   string
	OpenRouterBaseURL  string
	RequestTimeoutSecs int

	// Chat endpoint rate limit (requests/min/IP, 0 disables)
	ChatRateLimit int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Env:                getEnvOrDefault("ENV", "development"),
		OpenRouterAPIKey:   getEnvOrDefault("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL:  getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		RequestTimeoutSecs: getEnvAsIntOrDefault("REQUEST_TIMEOUT_SECONDS", 30),
		ChatRateLimit:      getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 0),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
