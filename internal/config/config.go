package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppEnv string
	Addr   string
	WebDir string

	// Observability (optional)
	SentryDSN string

	// Chat completion (Groq or any OpenAI-compatible endpoint)
	GroqAPIKey      string
	ChatBaseURL     string
	ChatModel       string
	ChatTemperature float64
	ChatMaxTokens   int
	ChatTimeout     time.Duration

	// Translation
	TranslateEndpoint string
	TranslateTimeout  time.Duration

	// Sessions
	SessionTTL time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		AppEnv: envString("APP_ENV", "development"),
		Addr:   envString("ADDR", ":8080"),
		WebDir: envString("WEB_DIR", "web"),

		SentryDSN: envString("SENTRY_DSN", ""),

		GroqAPIKey:      envString("GROQ_API_KEY", ""), // empty leaves the coach unconfigured
		ChatBaseURL:     envString("CHAT_BASE_URL", "https://api.groq.com/openai/v1"),
		ChatModel:       envString("CHAT_MODEL", "llama-3.1-8b-instant"),
		ChatTemperature: envFloat("CHAT_TEMPERATURE", 0.7),
		ChatMaxTokens:   envInt("CHAT_MAX_TOKENS", 200),
		ChatTimeout:     envDuration("CHAT_TIMEOUT", 20*time.Second),

		TranslateEndpoint: envString("TRANSLATE_ENDPOINT", "https://translate.googleapis.com"),
		TranslateTimeout:  envDuration("TRANSLATE_TIMEOUT", 5*time.Second),

		SessionTTL: envDuration("SESSION_TTL", 12*time.Hour),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ChatConfigured reports whether a completion credential is present.
func (c *Config) ChatConfigured() bool {
	return c.GroqAPIKey != ""
}
