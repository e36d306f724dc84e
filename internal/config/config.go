package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime settings loaded from the environment.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	TokenExpiry time.Duration

	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	SMTPSender   string
	SMTPPassword string
	SMTPHost     string
	SMTPPort     string
}

// LoadConfig reads the .env file (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "mdplanner"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenExpiry:  getDurationEnv("TOKEN_EXPIRY", 24*time.Hour),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:   getDurationEnv("LLM_TIMEOUT", 60*time.Second),
		SMTPSender:   getEnv("SMTP_SENDER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
	}

	if cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is not set; tokens will be signed with an empty key")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("Invalid duration %q, using default", value)
		return fallback
	}
	return d
}
