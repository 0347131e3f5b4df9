package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	TokenExpiry time.Duration `env:"TOKEN_EXPIRY" envDefault:"168h"`

	MongoURL           string        `env:"MONGODB_URL" envDefault:"mongodb://localhost:27017"`
	MongoDatabase      string        `env:"MONGODB_DATABASE" envDefault:"aroundb"`
	MongoConnTimeout   time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MongoOpTimeout     time.Duration `env:"MONGODB_OP_TIMEOUT" envDefault:"5s"`
	MongoRetryAttempts int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	MongoRetryInterval time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// Load reads configuration from the environment, loading a .env file first if
// one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
