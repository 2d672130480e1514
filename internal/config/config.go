// Package config loads the service settings from the environment
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/hotel-api/internal/errors"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// maxRoomsLimit caps the configurable booking size; the cross-floor search
// grows combinatorially with it.
const maxRoomsLimit = 10

// Config holds the service settings
type Config struct {
	HTTPAddr           string     `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCPort           int        `env:"GRPC_PORT" envDefault:"50051"`
	LogLevel           slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	StoreBackend       string     `env:"STORE_BACKEND" envDefault:"memory"`
	RedisAddr          string     `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	DBPath             string     `env:"DB_PATH" envDefault:"data/hotel.db"`
	HotelID            string     `env:"HOTEL_ID" envDefault:"default"`
	MaxRoomsPerBooking int        `env:"MAX_ROOMS_PER_BOOKING" envDefault:"5"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("HTTP_ADDR", c.HTTPAddr, vb)
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("STORE_BACKEND", c.StoreBackend, []string{StoreMemory, StoreRedis, StoreSQLite}, vb)
	errors.ValidateRequired("HOTEL_ID", c.HotelID, vb)
	errors.ValidateRange("MAX_ROOMS_PER_BOOKING", c.MaxRoomsPerBooking, 1, maxRoomsLimit, vb)

	switch c.StoreBackend {
	case StoreRedis:
		errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("DB_PATH", c.DBPath, vb)
	}

	return vb.Build()
}
