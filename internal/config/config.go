package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds the application configuration.
type Config struct {
	Port            int           `mapstructure:"PORT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	StoreDriver     string        `mapstructure:"STORE_DRIVER"`
	MongoURI        string        `mapstructure:"MONGODB_URI"`
	MongoDatabase   string        `mapstructure:"MONGODB_DATABASE"`
	MongoCollection string        `mapstructure:"MONGODB_COLLECTION"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	EnablePprof     bool          `mapstructure:"ENABLE_PPROF"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ErrNoEnvFile is returned alongside a valid config when no .env file was found.
var ErrNoEnvFile = errors.New(".env file not found, loading from environment variables")

func setDefaults(v *viper.Viper) {
	// Every key needs a default so AutomaticEnv picks it up during Unmarshal.
	v.SetDefault("PORT", 3001)
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "boardgames")
	v.SetDefault("MONGODB_COLLECTION", "boardgames")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
}

// Load reads configuration from a .env file in dir and from environment variables.
// Environment variables win over the file. A missing .env file is reported as
// ErrNoEnvFile together with a usable config.
func Load(dir string) (*Config, error) {
	v := viper.New()
	envFile := filepath.Join(dir, ".env")
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	var warn error
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		warn = ErrNoEnvFile
	} else if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, warn
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_URI is required for the mongo store")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}
