package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	Limiter RateLimiterConfig
	CORS    CORSConfig
	LLM     LLMConfig
	Sheets  SheetsConfig
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// generation backend configuration (any OpenAI-compatible endpoint)
type LLMConfig struct {
	APIKey      string  `envconfig:"OPENAI_API_KEY" required:"true"`
	BaseURL     string  `envconfig:"OPENAI_BASE_URL"`
	Model       string  `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	MaxTokens   int     `envconfig:"OPENAI_MAX_TOKENS" default:"4000"`
	Temperature float32 `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
}

// spreadsheet export configuration; both values absent means dry-run
type SheetsConfig struct {
	CredentialsFile string `envconfig:"SHEETS_CREDENTIALS_FILE"`
	SpreadsheetID   string `envconfig:"SHEETS_SPREADSHEET_ID"`
	SheetName       string `envconfig:"SHEETS_SHEET_NAME" default:"Sheet1"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if c.LLM.MaxTokens < 1 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be at least 1")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2")
	}
	if c.Sheets.SheetName == "" {
		return fmt.Errorf("SHEETS_SHEET_NAME must not be empty")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, "+
		"CORS.Origins=%d, LLM.Model=%s, Sheets.DryRun=%t}",
		c.Env, c.Port, c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled,
		len(c.CORS.TrustedOrigins), c.LLM.Model,
		c.Sheets.CredentialsFile == "" || c.Sheets.SpreadsheetID == "")
}
