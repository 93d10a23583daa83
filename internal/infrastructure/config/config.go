package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the client configuration, read from environment variables.
type Config struct {
	APIBaseURL  string        `env:"FOODDASH_API_URL,     default=http://localhost:8080/api/v1"`
	HTTPTimeout time.Duration `env:"FOODDASH_HTTP_TIMEOUT, default=15s"`
	Storage     string        `env:"FOODDASH_STORAGE,     default=file"` // file | redis | memory
	StateDir    string        `env:"FOODDASH_STATE_DIR"`
	LogLevel    string        `env:"LOG_LEVEL, default=info"`
	LogPretty   bool          `env:"LOG_PRETTY, default=true"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// StateDir defaults to ~/.fooddash when unset.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".fooddash")
	}
	return &cfg, nil
}

// StateFile returns the path of the persisted state document for the file
// backend.
func (c *Config) StateFile() string {
	return filepath.Join(c.StateDir, "state.json")
}
