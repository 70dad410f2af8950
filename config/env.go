package config

import (
	"os"
	"strconv"
)

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// GetEnvIntOrDefault parses an integer environment variable with a fallback
func GetEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

// SearchBaseURL is the asset search endpoint (moonshine-compatible API)
func SearchBaseURL() string {
	return GetEnvOrDefault("SEARCH_API_URL", "https://moon-shine.vercel.app/api/search")
}

// CORSProxyPrefix, when set, is prepended to every asset URL before fetching
func CORSProxyPrefix() string {
	return os.Getenv("CORS_PROXY_PREFIX")
}

// LogoURL is the brand logo fetched and composited onto every frame
func LogoURL() string {
	return os.Getenv("LOGO_URL")
}
