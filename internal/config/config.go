package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioWhatsAppFrom string

	JWTSecret string
	JWTExpiry time.Duration

	CodeTTL       time.Duration
	SweepInterval time.Duration

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables. It fails when the
// provider credentials are absent: the service cannot deliver anything
// without them, so it refuses to start.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: getEnv("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: getEnvDuration("JWT_EXPIRY", 24*time.Hour),

		CodeTTL:       getEnvDuration("VERIFICATION_CODE_TTL", 5*time.Minute),
		SweepInterval: getEnvDuration("VERIFICATION_SWEEP_INTERVAL", time.Minute),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}

	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return nil, fmt.Errorf("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN must be set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
