package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DirectoryStatic   = "static"
	DirectoryDynamoDB = "dynamodb"
)

type ServerConfig struct {
	Port string `validate:"required,numeric"`
}

type AdvisoryConfig struct {
	Debounce time.Duration `validate:"gte=0"`
	Timeout  time.Duration `validate:"gte=0"`
	BaseURL  string        `validate:"omitempty,url"`
	APIKey   string
	Model    string
	Mock     bool
}

type DirectoryConfig struct {
	Backend string `validate:"oneof=static dynamodb"`
}

type SessionConfig struct {
	Secret string        `validate:"required"`
	TTL    time.Duration `validate:"gt=0"`
}

type Config struct {
	LogLevel  string `validate:"oneof=debug info warn error"`
	Server    ServerConfig
	Advisory  AdvisoryConfig
	Directory DirectoryConfig
	Session   SessionConfig

	// GeneratedSecret is set when no SESSION_SECRET was provided and tokens
	// will not survive a restart.
	GeneratedSecret bool
}

// Load reads the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv. Unset keys take defaults.
func LoadFrom(getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	debounce, err := parseDuration("ADVISORY_DEBOUNCE", env("ADVISORY_DEBOUNCE", "500ms"))
	if err != nil {
		return nil, err
	}
	timeout, err := parseDuration("ADVISORY_TIMEOUT", env("ADVISORY_TIMEOUT", "15s"))
	if err != nil {
		return nil, err
	}
	ttl, err := parseDuration("SESSION_TTL", env("SESSION_TTL", "12h"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel: strings.ToLower(env("LOG_LEVEL", "info")),
		Server:   ServerConfig{Port: env("PORT", "8080")},
		Advisory: AdvisoryConfig{
			Debounce: debounce,
			Timeout:  timeout,
			BaseURL:  env("ADVISORY_BASE_URL", ""),
			APIKey:   env("ADVISORY_API_KEY", ""),
			Model:    env("ADVISORY_MODEL", ""),
			Mock:     IsMockEnabled(getenv("ADVISORY_MOCK")),
		},
		Directory: DirectoryConfig{Backend: strings.ToLower(env("DIRECTORY_BACKEND", DirectoryStatic))},
		Session:   SessionConfig{Secret: env("SESSION_SECRET", ""), TTL: ttl},
	}

	if cfg.Session.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.Session.Secret = secret
		cfg.GeneratedSecret = true
	}
	return cfg, nil
}

// Validate checks the final configuration, after flag overrides.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsMockEnabled accepts the usual truthy spellings plus "mock".
func IsMockEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func parseDuration(key, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
