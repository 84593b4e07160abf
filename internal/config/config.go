package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Session   SessionConfig
	Checkout  CheckoutConfig
	Sheets    SheetsConfig
	Support   SupportConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type CheckoutConfig struct {
	// ProcessingDelay models the simulated payment gateway round trip.
	ProcessingDelay time.Duration
}

type SheetsConfig struct {
	// URL of the order summary sync endpoint. Empty disables the sync.
	URL     string
	Timeout time.Duration
}

type SupportConfig struct {
	ReplyDelay time.Duration
}

type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

// Load reads configuration from .env and environment variables, with
// development defaults for everything but the session secret.
func Load() *Config {
	// Best-effort .env load for local development; env vars win.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_TOKEN_TTL_MINUTES", 12*60)
	viper.SetDefault("CHECKOUT_PROCESSING_DELAY_MS", 2000)
	viper.SetDefault("SHEETS_SYNC_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SUPPORT_REPLY_DELAY_MS", 1000)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	if viper.GetString("SESSION_SECRET") == "" {
		log.Printf("Warning: SESSION_SECRET not set, using an insecure development default")
		viper.SetDefault("SESSION_SECRET", "dev-only-secret")
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:   viper.GetString("SESSION_SECRET"),
			TokenTTL: time.Duration(viper.GetInt("SESSION_TOKEN_TTL_MINUTES")) * time.Minute,
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: time.Duration(viper.GetInt("CHECKOUT_PROCESSING_DELAY_MS")) * time.Millisecond,
		},
		Sheets: SheetsConfig{
			URL:     viper.GetString("SHEETS_SYNC_URL"),
			Timeout: time.Duration(viper.GetInt("SHEETS_SYNC_TIMEOUT_SECONDS")) * time.Second,
		},
		Support: SupportConfig{
			ReplyDelay: time.Duration(viper.GetInt("SUPPORT_REPLY_DELAY_MS")) * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:            time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
	}
}
