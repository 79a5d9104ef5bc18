package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables holding secrets and deployment overrides
const (
	EnvGeminiKeys  = "GEMINI_API_KEYS"
	EnvGeminiKey   = "GEMINI_API_KEY"
	EnvOpenAIKey   = "OPENAI_API_KEY"
	EnvDatabaseURL = "DATABASE_URL"
	EnvRedisURL    = "REDIS_URL"
	EnvServiceKey  = "SERVICE_API_KEY"
	EnvLogLevel    = "LOG_LEVEL"
)

// LoadEnv loads a .env file into the process environment if one exists
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// Load reads the YAML config at path, applies environment overrides and
// validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if keys := os.Getenv(EnvGeminiKeys); keys != "" {
		c.Gemini.APIKeys = splitList(keys)
	} else if key := os.Getenv(EnvGeminiKey); key != "" {
		c.Gemini.APIKeys = []string{key}
	}
	if key := os.Getenv(EnvOpenAIKey); key != "" {
		c.Embedding.OpenAIKey = key
	}
	if url := os.Getenv(EnvDatabaseURL); url != "" {
		c.Storage.DatabaseURL = url
	}
	if url := os.Getenv(EnvRedisURL); url != "" {
		c.Cache.RedisURL = url
	}
	if key := os.Getenv(EnvServiceKey); key != "" {
		c.Server.APIKey = key
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
