package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Auth  AuthConfig
	Chat  ChatConfig
	Ai    AIConfig
	Admin AdminSeedConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadDir          string
}

type AuthConfig struct {
	JwtSecret       string
	SessionTTLHours int
}

type ChatConfig struct {
	DailyLimit int
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string // e.g. "gpt-4o", "llama3"
	OpenAIKey     string
	OllamaBaseURL string
}

// AdminSeedConfig holds the credentials for the admin account created on
// first boot. The store is in-memory, so this runs on every start.
type AdminSeedConfig struct {
	Username string
	Email    string
	Password string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		},
		Auth: AuthConfig{
			JwtSecret:       getEnv("JWT_SECRET", "fallback-secret-key-for-dev"),
			SessionTTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24*7),
		},
		Chat: ChatConfig{
			DailyLimit: getEnvAsInt("CHAT_DAILY_LIMIT", 5),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4o"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Admin: AdminSeedConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Email:    getEnv("ADMIN_EMAIL", "admin@localhost"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
