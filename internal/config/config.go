package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisURL        string
	LogFile         string
	MigrationsDir   string
	JWTSecret       string
	QuoteRecipients []string
	Email           EmailConfig
	Assets          AssetConfig
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Secure   bool
}

func (e EmailConfig) Enabled() bool {
	return e.Host != "" && e.Port != 0 && e.From != ""
}

type AssetConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

func (a AssetConfig) Enabled() bool {
	return a.Bucket != ""
}

func Load() (Config, error) {
	// Best effort: a missing .env is normal outside local development.
	_ = godotenv.Load()

	clean := func(val string) string {
		return strings.Trim(val, "\"' \t\r\n")
	}

	rawPort := strings.Trim(getenvDefault("EMAIL_SERVER_PORT", "587"), "\"' ")
	emailPort, err := strconv.Atoi(rawPort)
	if err != nil {
		emailPort = 587
	}

	cfg := Config{
		Port:            getenvDefault("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        getenvDefault("REDIS_URL", "redis://localhost:6379"),
		LogFile:         getenvDefault("LOG_FILE", "logs/server.log"),
		MigrationsDir:   getenvDefault("MIGRATIONS_DIR", "migrations"),
		JWTSecret:       getenvDefault("SECRET_KEY", "supersecretkey"),
		QuoteRecipients: parseList(os.Getenv("MAIL_TO")),
	}

	cfg.Email = EmailConfig{
		Host:     clean(os.Getenv("EMAIL_SERVER_HOST")),
		Port:     emailPort,
		Username: clean(os.Getenv("EMAIL_SERVER_USER")),
		Password: clean(os.Getenv("EMAIL_SERVER_PASSWORD")),
		From:     clean(getenvDefault("MAIL_FROM", "noreply@podologiaconi.cl")),
		Secure:   parseBool(os.Getenv("EMAIL_SERVER_SECURE")),
	}

	cfg.Assets = AssetConfig{
		Endpoint:      clean(os.Getenv("S3_ENDPOINT")),
		Region:        getenvDefault("S3_REGION", "us-east-1"),
		Bucket:        clean(os.Getenv("S3_BUCKET")),
		AccessKey:     clean(os.Getenv("S3_ACCESS_KEY")),
		SecretKey:     clean(os.Getenv("S3_SECRET_KEY")),
		PublicBaseURL: strings.TrimRight(clean(os.Getenv("S3_PUBLIC_BASE_URL")), "/"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func parseBool(val string) bool {
	if val == "" {
		return false
	}
	val = strings.ToLower(strings.Trim(val, "\"' "))
	return val == "1" || val == "true" || val == "yes"
}

func parseList(val string) []string {
	parts := strings.Split(val, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
