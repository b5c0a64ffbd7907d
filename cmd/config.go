// Package cmd holds the configuration and composition plumbing shared by the
// service binaries.
package cmd

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries the environment configuration for all three services. Each
// binary reads the subset it needs.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	OrderServiceURL string `envconfig:"ORDER_SERVICE_URL"`
	AgentServiceURL string `envconfig:"AGENT_SERVICE_URL"`

	OpenAPISpecPath string `envconfig:"OPENAPI_SPEC_PATH"`

	StuckOrderThreshold time.Duration `envconfig:"STUCK_ORDER_THRESHOLD" default:"5m"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// PostgresDSN assembles the gorm connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
