package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"hospital"`
	ServerPort  int    `env:"SERVER_PORT"  envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`

	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	JWTSecret      string        `env:"JWT_SECRET,required"`
	JWTAlgorithm   string        `env:"JWT_ALGORITHM"    envDefault:"HS256"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"20m"`

	CookieSecure bool     `env:"COOKIE_SECURE" envDefault:"true"`
	CORSOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
}

var supportedAlgorithms = []string{"HS256", "HS384", "HS512"}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be blank"))
	}
	if !slices.Contains(supportedAlgorithms, c.JWTAlgorithm) {
		errs = append(errs, fmt.Errorf("JWT_ALGORITHM must be one of %s", strings.Join(supportedAlgorithms, ", ")))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT %d is out of range", c.ServerPort))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

func parse(v any) error {
	if err := env.Parse(v); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
