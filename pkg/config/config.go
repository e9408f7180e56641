package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type LLM struct {
	Provider    string        `yaml:"provider"`
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float32       `yaml:"temperature"`
	AppTitle    string        `yaml:"app_title"`
	Referer     string        `yaml:"referer"`
}

type RateLimit struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

type Config struct {
	Port        string    `yaml:"port"`
	DatabaseURL string    `yaml:"database_url"`
	JWTSecret   string    `yaml:"jwt_secret"`
	JWTIssuer   string    `yaml:"jwt_issuer"`
	LogLevel    string    `yaml:"log_level"`
	LogFormat   string    `yaml:"log_format"`
	LLM         LLM       `yaml:"llm"`
	RateLimit   RateLimit `yaml:"rate_limit"`
}

const (
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
)

func defaults() Config {
	return Config{
		Port:      "8080",
		JWTSecret: "dev-secret-change",
		JWTIssuer: "hirepilot",
		LogLevel:  "info",
		LogFormat: "text",
		LLM: LLM{
			Provider:    ProviderOpenRouter,
			Timeout:     60 * time.Second,
			Temperature: 0.5,
			AppTitle:    "HirePilot",
			Referer:     "http://localhost:3000",
		},
		RateLimit: RateLimit{Max: 10, Window: time.Minute},
	}
}

// Load resolves configuration once: defaults, then the optional YAML file named
// by CONFIG_FILE, then environment variables (optionally from .env).
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	cfg.LLM.Provider = strings.ToLower(getEnv("LLM_PROVIDER", cfg.LLM.Provider))
	cfg.LLM.APIKey = getEnv("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.Timeout = getEnvDuration("LLM_TIMEOUT", cfg.LLM.Timeout)
	cfg.LLM.Temperature = getEnvFloat("LLM_TEMPERATURE", cfg.LLM.Temperature)
	cfg.LLM.AppTitle = getEnv("LLM_APP_TITLE", cfg.LLM.AppTitle)
	cfg.LLM.Referer = getEnv("LLM_REFERER", cfg.LLM.Referer)

	cfg.RateLimit.Max = getEnvInt("RATE_LIMIT_MAX", cfg.RateLimit.Max)
	cfg.RateLimit.Window = getEnvDuration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenRouter, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.LLM.Timeout)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE out of range: %v", c.LLM.Temperature)
	}
	if c.RateLimit.Max < 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must not be negative")
	}
	return nil
}

// HasCredential reports whether a generation provider can be called at all.
func (c LLM) HasCredential() bool { return strings.TrimSpace(c.APIKey) != "" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("45s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func getEnvFloat(key string, def float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}
