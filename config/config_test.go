package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 16, cfg.Cache.Shards)
		assert.Equal(t, 100, cfg.Batch.MaxItems)
		assert.Zero(t, cfg.Batch.Workers)
		assert.False(t, cfg.Auth.Enabled)
		assert.Nil(t, cfg.Auth.APIKeys)
		assert.Equal(t, "boltjoint", cfg.Database.DatabaseName)
		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		_ = os.Setenv("CACHE_SIZE", "500")
		_ = os.Setenv("CACHE_TTL", "10m")
		_ = os.Setenv("CACHE_SHARDS", "4")
		_ = os.Setenv("BATCH_MAX_ITEMS", "20")
		_ = os.Setenv("BATCH_WORKERS", "3")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("JWT_SECRET_KEY", "s3cret")
		_ = os.Setenv("CORS_ORIGINS", "https://joints.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 4, cfg.Cache.Shards)
		assert.Equal(t, 20, cfg.Batch.MaxItems)
		assert.Equal(t, 3, cfg.Batch.Workers)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecretKey)
		assert.Contains(t, cfg.Server.CORSOrigins, "https://joints.example.com")
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("BATCH_MAX_ITEMS", "many")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 100, cfg.Batch.MaxItems)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , , key2 ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		auth    AuthConfig
		wantErr error
	}{
		{name: "auth disabled", auth: AuthConfig{}},
		{name: "api keys", auth: AuthConfig{Enabled: true, APIKeys: []string{"k"}}},
		{name: "jwt secret", auth: AuthConfig{Enabled: true, JWTSecretKey: "s"}},
		{name: "no credentials", auth: AuthConfig{Enabled: true}, wantErr: ErrNoCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{Auth: tt.auth}.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
