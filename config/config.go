package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string
	// Two Postgres DSNs against the same Supabase-hosted database:
	// the anon role respects row-level security, the service role bypasses
	// it for writes performed on behalf of anonymous visitors.
	DBAnonURL    string
	DBServiceURL string
	FrontendURL  string
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	LeadsEmailTo  string
	// Redis Configuration (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowMinutes  int
	RateLimitGlobalRequests int
	RateLimitContactPerHour int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		DBAnonURL:    getEnv("DATABASE_ANON_URL", ""),
		DBServiceURL: getEnv("DATABASE_SERVICE_URL", ""),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "https://stravigo.com"), "/"),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASS", ""),
		SMTPFromEmail: getEnv("EMAIL_FROM", "hello@stravigo.com"),
		LeadsEmailTo:  getEnv("EMAIL_TO", "leads@stravigo.com"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowMinutes:  getEnvInt("RATE_LIMIT_WINDOW", 15),
		RateLimitGlobalRequests: getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitContactPerHour: getEnvInt("RATE_LIMIT_CONTACT_PER_HOUR", 5),
	}

	// Both access tiers are mandatory; refusing to start beats discovering a
	// missing credential on the first write.
	var missing []string
	if cfg.DBAnonURL == "" {
		missing = append(missing, "DATABASE_ANON_URL")
	}
	if cfg.DBServiceURL == "" {
		missing = append(missing, "DATABASE_SERVICE_URL")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// IsProduction reports whether the diagnostic toggles (error detail in
// responses) must stay off.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
