package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	GRPC     GRPC     `envPrefix:"GRPC_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Hash     Hash     `envPrefix:"HASH_"`
	Policy   Policy   `envPrefix:"POLICY_"`
	Items    Items    `envPrefix:"ITEMS_"`
}

// HTTP contains GraphQL HTTP server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8000"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// GRPC contains health server parameters.
type GRPC struct {
	Port           string        `env:"PORT" envDefault:"50051"`
	HealthInterval time.Duration `env:"HEALTH_INTERVAL" envDefault:"15s"`
}

// Database contains database connection parameters.
type Database struct {
	DSN string `env:"DSN" envDefault:"postgres://postgres@localhost:5432/main?sslmode=disable"`
}

// JWT contains JWT-related parameters.
type JWT struct {
	Secret    string        `env:"SECRET" envDefault:"devsecret"`
	AccessTTL time.Duration `env:"ACCESS_TTL" envDefault:"30m"`
}

// Hash contains password hashing parameters.
type Hash struct {
	Cost int `env:"COST" envDefault:"12"`
}

// Policy lists fields visible to superusers only.
type Policy struct {
	UserRestrictedFields []string `env:"USER_RESTRICTED_FIELDS" envDefault:"email,hashedPassword" envSeparator:","`
	ItemRestrictedFields []string `env:"ITEM_RESTRICTED_FIELDS" envSeparator:","`
}

// Items contains item creation parameters.
type Items struct {
	ClientPostedOn bool `env:"CLIENT_POSTED_ON" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
