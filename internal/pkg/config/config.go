package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is the development fallback used when JWT_SECRET is unset.
// Startup logs a warning whenever it is in effect; production deployments
// must override it.
const DefaultJWTSecret = "your_jwt_secret_key"

// Config is the immutable configuration snapshot, loaded once at startup and
// passed by reference into services. Business logic never reads the process
// environment directly.
type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret falls back to DefaultJWTSecret when empty (see Load).
	JWTSecret string `env:"JWT_SECRET"`

	// AdminEmail and AdminPassword may legitimately be absent: their absence
	// is a per-request configuration error on login, not a boot failure.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://127.0.0.1:27017"`
	Database string `env:"MONGO_DB,  default=backoffice"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// The returned flag reports whether the JWT secret fell back to the default,
// so the caller can log the weak-secret warning without config depending on
// the logger.
func Load() (*Config, bool) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}

	usingDefault := cfg.JWTSecret == ""
	if usingDefault {
		cfg.JWTSecret = DefaultJWTSecret
	}
	return &cfg, usingDefault
}
