package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,   default=24h"`

	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=member_service"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int           `env:"REDIS_DB,   default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL,  default=1h"`
}

// SeedConfig names the accounts provisioned at startup when they do not
// exist yet. Empty credentials skip the corresponding account. The passwords
// deliberately have no defaults: until SEED_ADMIN_PASSWORD and
// SEED_USER_PASSWORD are set (or users exist already), no accounts are
// created and every login fails.
type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	UserUsername  string `env:"SEED_USER_USERNAME,  default=member"`
	UserPassword  string `env:"SEED_USER_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
