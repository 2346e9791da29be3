package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Workspace
	WorkspaceDir string

	// Redis (optional cache)
	RedisURL string

	// Gemini (generator A)
	GeminiAPIKey string
	GeminiModel  string

	// Ollama (generator B, active only when the base URL is set)
	OllamaBaseURL string
	OllamaModel   string

	// Render service
	RendererURL string

	// Script
	ScriptDurationSeconds int

	// Social publishing
	StateSecret       string
	SocialRedirectURI string

	// Rate limiting
	GenerateRateLimit int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnvOrDefault("PORT", "8000"),
		Env:                   getEnvOrDefault("ENV", "development"),
		WorkspaceDir:          getEnvOrDefault("WORKSPACE_DIR", "./workspace"),
		RedisURL:              getEnvOrDefault("REDIS_URL", ""),
		GeminiAPIKey:          getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		OllamaBaseURL:         getEnvOrDefault("OLLAMA_BASE_URL", ""),
		OllamaModel:           getEnvOrDefault("OLLAMA_MODEL", "mistral"),
		RendererURL:           getEnvOrDefault("RENDERER_URL", ""),
		ScriptDurationSeconds: getEnvAsIntOrDefault("SCRIPT_DURATION_SECONDS", 30),
		StateSecret:           getEnvOrDefault("STATE_SECRET", "dev-state-secret"),
		SocialRedirectURI:     getEnvOrDefault("SOCIAL_REDIRECT_URI", "http://localhost:8000/api/v1/social/callback"),
		GenerateRateLimit:     getEnvAsIntOrDefault("GENERATE_RATE_LIMIT", 10),
		FrontendURL:           getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

// Workspace subdirectories.

func (c *Config) AssetsDir() string { return filepath.Join(c.WorkspaceDir, "assets") }
func (c *Config) RenderDir() string { return filepath.Join(c.WorkspaceDir, "render") }
func (c *Config) TrendsDir() string { return filepath.Join(c.WorkspaceDir, "trends") }
func (c *Config) ReviewDir() string { return filepath.Join(c.WorkspaceDir, "review") }

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
