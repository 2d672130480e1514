package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hotel-api/internal/config"
	"github.com/KirkDiggler/hotel-api/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, config.StoreMemory, cfg.StoreBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "data/hotel.db", cfg.DBPath)
	assert.Equal(t, "default", cfg.HotelID)
	assert.Equal(t, 5, cfg.MaxRoomsPerBooking)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("DB_PATH", "/tmp/hotel.db")
	t.Setenv("MAX_ROOMS_PER_BOOKING", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, config.StoreSQLite, cfg.StoreBackend)
	assert.Equal(t, "/tmp/hotel.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.MaxRoomsPerBooking)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "unknown backend",
			env:     map[string]string{"STORE_BACKEND": "postgres"},
			wantMsg: "STORE_BACKEND: must be one of: memory, redis, sqlite",
		},
		{
			name:    "booking limit too large",
			env:     map[string]string{"MAX_ROOMS_PER_BOOKING": "50"},
			wantMsg: "MAX_ROOMS_PER_BOOKING: must be between 1 and 10",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"GRPC_PORT": "70000"},
			wantMsg: "GRPC_PORT: must be between 1 and 65535",
		},
		{
			name:    "port not a number",
			env:     map[string]string{"GRPC_PORT": "grpc"},
			wantMsg: "failed to parse environment",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidate_BackendSettings(t *testing.T) {
	cfg := &config.Config{
		HTTPAddr:           ":8080",
		GRPCPort:           50051,
		StoreBackend:       config.StoreRedis,
		HotelID:            "default",
		MaxRoomsPerBooking: 5,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_ADDR: is required")

	cfg.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}
