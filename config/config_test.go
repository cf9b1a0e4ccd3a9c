package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("GUARDIFY_SERVER_PORT")
		os.Unsetenv("GUARDIFY_SERVER_ENVIRONMENT")
		os.Unsetenv("GUARDIFY_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("GUARDIFY_MODEL_PATH")
		os.Unsetenv("GUARDIFY_IMAGES_MAX_IMAGES")
		os.Unsetenv("GUARDIFY_IMAGES_FETCH_TIMEOUT")
		os.Unsetenv("GUARDIFY_IMAGES_CONCURRENCY")
		os.Unsetenv("GUARDIFY_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8000" {
			t.Errorf("Server.Port = %s, want 8000", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Model.Path != "model.json" {
			t.Errorf("Model.Path = %s, want model.json", cfg.Model.Path)
		}
		if cfg.Images.MaxImages != 5 {
			t.Errorf("Images.MaxImages = %d, want 5", cfg.Images.MaxImages)
		}
		if cfg.Images.FetchTimeout != 10*time.Second {
			t.Errorf("Images.FetchTimeout = %v, want 10s", cfg.Images.FetchTimeout)
		}
		if cfg.Images.Concurrency != 4 {
			t.Errorf("Images.Concurrency = %d, want 4", cfg.Images.Concurrency)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GUARDIFY_SERVER_PORT", "9000")
		os.Setenv("GUARDIFY_MODEL_PATH", "/var/lib/guardify/model.json")
		os.Setenv("GUARDIFY_IMAGES_MAX_IMAGES", "8")
		os.Setenv("GUARDIFY_IMAGES_FETCH_TIMEOUT", "5s")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9000" {
			t.Errorf("Server.Port = %s, want 9000", cfg.Server.Port)
		}
		if cfg.Model.Path != "/var/lib/guardify/model.json" {
			t.Errorf("Model.Path = %s, want /var/lib/guardify/model.json", cfg.Model.Path)
		}
		if cfg.Images.MaxImages != 8 {
			t.Errorf("Images.MaxImages = %d, want 8", cfg.Images.MaxImages)
		}
		if cfg.Images.FetchTimeout != 5*time.Second {
			t.Errorf("Images.FetchTimeout = %v, want 5s", cfg.Images.FetchTimeout)
		}
	})

	t.Run("rejects non-positive max images", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GUARDIFY_IMAGES_MAX_IMAGES", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects non-positive concurrency", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GUARDIFY_IMAGES_CONCURRENCY", "-1")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}
