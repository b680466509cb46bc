package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("PANTRY_SERVER_PORT")
		os.Unsetenv("PANTRY_SERVER_ENVIRONMENT")
		os.Unsetenv("PANTRY_STORE_PATH")
		os.Unsetenv("PANTRY_CACHE_TYPE")
		os.Unsetenv("PANTRY_CACHE_REDIS_URL")
		os.Unsetenv("PANTRY_CACHE_TTL")
		os.Unsetenv("PANTRY_RATELIMIT_PER_IP")
		os.Unsetenv("PANTRY_RATELIMIT_BURST")
		os.Unsetenv("PANTRY_ENGINE_MAX_SUBSTITUTES")
		os.Unsetenv("PANTRY_LOG_LEVEL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Store.Path != "data/homepantry.db" {
			t.Errorf("Store.Path = %s, want data/homepantry.db", cfg.Store.Path)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 10*time.Minute {
			t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 20 {
			t.Errorf("RateLimit.PerIP = %d, want 20", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 40 {
			t.Errorf("RateLimit.Burst = %d, want 40", cfg.RateLimit.Burst)
		}
		if cfg.Engine.MaxSubstitutes != 3 {
			t.Errorf("Engine.MaxSubstitutes = %d, want 3", cfg.Engine.MaxSubstitutes)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PANTRY_SERVER_PORT", "9090")
		os.Setenv("PANTRY_SERVER_ENVIRONMENT", "production")
		os.Setenv("PANTRY_STORE_PATH", "/var/lib/homepantry/pantry.db")
		os.Setenv("PANTRY_CACHE_TYPE", "redis")
		os.Setenv("PANTRY_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("PANTRY_CACHE_TTL", "1h")
		os.Setenv("PANTRY_RATELIMIT_PER_IP", "200")
		os.Setenv("PANTRY_LOG_LEVEL", "debug")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Store.Path != "/var/lib/homepantry/pantry.db" {
			t.Errorf("Store.Path = %s, want /var/lib/homepantry/pantry.db", cfg.Store.Path)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PANTRY_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PANTRY_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:     StoreConfig{Path: "data/test.db"},
			Cache:     CacheConfig{Type: "memory"},
			RateLimit: RateLimitConfig{PerIP: 20, Burst: 40},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when store path is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Path = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty store path")
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "invalid-type"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("validates redis cache type with URL", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "redis"
		cfg.Cache.RedisURL = "redis://localhost:6379"
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil for valid redis config", err)
		}
	})

	t.Run("fails for redis cache without URL", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "redis"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for redis without URL")
		}
	})

	t.Run("fails for non-positive rate limit", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.PerIP = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero per-ip limit")
		}
	})
}
