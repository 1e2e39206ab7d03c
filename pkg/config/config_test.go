package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odalys-dev/pennybook/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, config.BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.True(t, cfg.IsDevelopment())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name: "redis backend with url",
			cfg:  config.Config{StorageBackend: config.BackendRedis, RedisURL: "localhost:6379"},
		},
		{
			name:    "postgres backend without url",
			cfg:     config.Config{StorageBackend: config.BackendPostgres},
			wantErr: true,
		},
		{
			name: "postgres backend with url",
			cfg:  config.Config{StorageBackend: config.BackendPostgres, DatabaseURL: "postgres://localhost/pennybook"},
		},
		{
			name: "memory backend in development",
			cfg:  config.Config{StorageBackend: config.BackendMemory, Env: "development"},
		},
		{
			name:    "memory backend in production",
			cfg:     config.Config{StorageBackend: config.BackendMemory, Env: "production"},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			cfg:     config.Config{StorageBackend: "sqlite"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadPostgresBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", config.BackendPostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost/pennybook")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendPostgres, cfg.StorageBackend)
}
