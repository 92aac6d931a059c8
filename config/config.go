package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig menampung seluruh konfigurasi aplikasi yang dibaca dari environment.
type AppConfig struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	LogLevel    string
	Environment string

	// SMTP untuk email peringatan masa berlaku. Opsional: jika SMTPHost kosong,
	// pengiriman email dimatikan.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPSender   string
}

// Load membaca konfigurasi dari environment variables.
// DATABASE_URL dan JWT_SECRET wajib ada; tanpa keduanya aplikasi tidak boleh jalan.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg.Port = GetEnv("PORT", "3000")
	cfg.LogLevel = GetEnv("LOG_LEVEL", "info")
	cfg.Environment = GetEnv("ENVIRONMENT", "development")

	cfg.SMTPHost = GetEnv("SMTP_HOST", "")
	cfg.SMTPPort = GetEnvAsInt("SMTP_PORT", 587)
	cfg.SMTPUser = GetEnv("SMTP_USER", "")
	cfg.SMTPPassword = GetEnv("SMTP_PASSWORD", "")
	cfg.SMTPSender = GetEnv("SMTP_SENDER", "noreply@disdag.go.id")

	return cfg, nil
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
