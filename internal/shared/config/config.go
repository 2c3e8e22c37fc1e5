package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Placeholder API keys that ship in .env.example files. A credential equal to
// one of these is treated the same as no credential at all.
var placeholderAPIKeys = map[string]struct{}{
	"your_api_key_here":               {},
	"your_actual_openai_api_key_here": {},
}

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	CatalogPath     string
	OpenAIAPIKey    string
	OpenAIModel     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		CatalogPath:     getEnv("CATALOG_PATH", "data/tools.json"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o"),
	}
}

// HasLLMCredential reports whether a usable external API key is configured.
// Missing or placeholder keys activate the deterministic fallback path for
// the lifetime of the process.
func (c Config) HasLLMCredential() bool {
	key := strings.TrimSpace(c.OpenAIAPIKey)
	if key == "" {
		return false
	}
	_, isPlaceholder := placeholderAPIKeys[key]
	return !isPlaceholder
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		// godotenv never overrides variables already set in the environment,
		// which is the behavior we want for deployed configs.
		_ = godotenv.Load(path)
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
