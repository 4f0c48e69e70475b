package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SlackBotToken         string        `yaml:"slack_bot_token"`
	SlackSigningSecret    string        `yaml:"slack_signing_secret"`
	DatabasePath          string        `yaml:"database_path"`
	Port                  string        `yaml:"port"`
	LogLevel              string        `yaml:"log_level"`
	LogFormat             string        `yaml:"log_format"`
	ResolverMaxIterations int           `yaml:"resolver_max_iterations"`
	CleanupInterval       time.Duration `yaml:"cleanup_interval"`
	CleanupRetryDelay     time.Duration `yaml:"cleanup_retry_delay"`
	CanceledRetentionDays int           `yaml:"canceled_retention_days"`
}

func defaults() *Config {
	return &Config{
		DatabasePath:          "./roster.db",
		Port:                  "3000",
		LogLevel:              "info",
		LogFormat:             "text",
		ResolverMaxIterations: domain.DefaultMaxIterations,
		CleanupInterval:       domain.DefaultCleanupInterval,
		CleanupRetryDelay:     domain.DefaultCleanupRetryDelay,
		CanceledRetentionDays: domain.DefaultCanceledRetentionDays,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// ROSTER_CONFIG_FILE (if any), then environment variables.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("ROSTER_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.SlackBotToken = getEnv("SLACK_BOT_TOKEN", c.SlackBotToken)
	c.SlackSigningSecret = getEnv("SLACK_SIGNING_SECRET", c.SlackSigningSecret)
	c.DatabasePath = getEnv("DATABASE_PATH", c.DatabasePath)
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)

	var err error
	if c.ResolverMaxIterations, err = getEnvInt("RESOLVER_MAX_ITERATIONS", c.ResolverMaxIterations); err != nil {
		return err
	}
	if c.CanceledRetentionDays, err = getEnvInt("CANCELED_RETENTION_DAYS", c.CanceledRetentionDays); err != nil {
		return err
	}
	if c.CleanupInterval, err = getEnvDuration("CLEANUP_INTERVAL", c.CleanupInterval); err != nil {
		return err
	}
	if c.CleanupRetryDelay, err = getEnvDuration("CLEANUP_RETRY_DELAY", c.CleanupRetryDelay); err != nil {
		return err
	}

	return nil
}

func (c *Config) validate() error {
	if c.ResolverMaxIterations <= 0 {
		return fmt.Errorf("resolver_max_iterations must be positive, got %d", c.ResolverMaxIterations)
	}
	if c.CleanupInterval <= 0 || c.CleanupRetryDelay <= 0 {
		return fmt.Errorf("cleanup intervals must be positive")
	}
	if c.CanceledRetentionDays <= 0 {
		return fmt.Errorf("canceled_retention_days must be positive, got %d", c.CanceledRetentionDays)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
