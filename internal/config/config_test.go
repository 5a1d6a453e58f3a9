package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "OPENROUTER_API_KEY", "OPENROUTER_BASE_URL",
		"REQUEST_TIMEOUT_SECONDS", "CHAT_RATE_LIMIT", "FRONTEND_URL",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("Unexpected default base URL %q", cfg.OpenRouterBaseURL)
	}
	if cfg.RequestTimeoutSecs != 30 {
		t.Errorf("Expected default timeout 30s, got %d", cfg.RequestTimeoutSecs)
	}
	if cfg.ChatRateLimit != 0 {
		t.Errorf("Expected rate limiting disabled by default, got %d", cfg.ChatRateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("PORT", "9999")
	os.Setenv("REQUEST_TIMEOUT_SECONDS", "10")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("REQUEST_TIMEOUT_SECONDS")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("Expected port 9999, got %q", cfg.Port)
	}
	if cfg.RequestTimeoutSecs != 10 {
		t.Errorf("Expected timeout 10s, got %d", cfg.RequestTimeoutSecs)
	}
}
