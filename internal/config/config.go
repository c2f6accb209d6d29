package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Supabase
	SupabaseURL           string
	SupabaseAnonKey       string
	SupabaseStorageBucket string

	// Database (migrations only)
	DatabaseURL string

	// Server
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	// Rate limiting
	RateLimitRequests int64
	RateLimitPeriod   time.Duration

	// Images
	ImageFetchTimeout time.Duration
	MaxUploadSizeMB   int64

	// Contact links
	BrandName           string
	WhatsAppCountryCode string
}

// Load reads the environment (and .env, when present) into a Config.
// Missing Supabase credentials are not an error here; the gateway reports
// them on first use.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:       getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "restored-images"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),

		BrandName:           getEnv("BRAND_NAME", "RestauraPRO"),
		WhatsAppCountryCode: getEnv("WHATSAPP_COUNTRY_CODE", "55"),
	}

	var err error
	if cfg.RateLimitRequests, err = getInt("RATE_LIMIT_REQUESTS", 120); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.RateLimitPeriod, err = getDuration("RATE_LIMIT_PERIOD", time.Minute); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.ImageFetchTimeout, err = getDuration("IMAGE_FETCH_TIMEOUT", 30*time.Second); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.MaxUploadSizeMB, err = getInt("MAX_UPLOAD_SIZE_MB", 20); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.RateLimitPeriod <= 0 {
		return fmt.Errorf("RATE_LIMIT_PERIOD must be positive")
	}
	if c.ImageFetchTimeout <= 0 {
		return fmt.Errorf("IMAGE_FETCH_TIMEOUT must be positive")
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	if strings.Trim(c.WhatsAppCountryCode, "0123456789") != "" {
		return fmt.Errorf("WHATSAPP_COUNTRY_CODE must contain digits only")
	}
	return nil
}

// MissingSupabaseCredentials lists the connection variables that are unset.
func (c *Config) MissingSupabaseCredentials() []string {
	var missing []string
	if c.SupabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.SupabaseAnonKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	return missing
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
