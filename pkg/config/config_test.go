package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Gateway.BaseURL != DefaultGatewayURL {
		t.Errorf("gateway base_url = %q", cfg.Gateway.BaseURL)
	}
	if cfg.HotelAPI.BaseURL != DefaultHotelAPIURL {
		t.Errorf("hotel api base_url = %q", cfg.HotelAPI.BaseURL)
	}
	if cfg.Authorization.PollIntervalSeconds != 5 || cfg.Authorization.PollMaxAttempts != 12 {
		t.Errorf("authorization defaults = %+v", cfg.Authorization)
	}
}

func TestLoadFromFillsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`gateway:
  base_url: https://gateway.example.com
authorization:
  poll_max_attempts: 24
general:
  username: Carol
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Gateway.BaseURL != "https://gateway.example.com" {
		t.Errorf("gateway base_url = %q", cfg.Gateway.BaseURL)
	}
	if cfg.HotelAPI.BaseURL != DefaultHotelAPIURL {
		t.Errorf("hotel api base_url = %q, expected default", cfg.HotelAPI.BaseURL)
	}
	if cfg.Authorization.PollIntervalSeconds != 5 {
		t.Errorf("poll_interval_seconds = %d, expected default", cfg.Authorization.PollIntervalSeconds)
	}
	if cfg.Authorization.PollMaxAttempts != 24 {
		t.Errorf("poll_max_attempts = %d", cfg.Authorization.PollMaxAttempts)
	}
	if cfg.General.Username != "Carol" {
		t.Errorf("username = %q", cfg.General.Username)
	}
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("gateway: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvAccessToken, "tok-123")
	t.Setenv(EnvUserID, "u-9")
	t.Setenv(EnvUsername, "Alice")
	t.Setenv(EnvGatewayURL, "https://env-gw.example.com")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	creds := LoadEnv(cfg)

	if !creds.SignedIn() {
		t.Error("expected SignedIn with token set")
	}
	if creds.AccessToken != "tok-123" || creds.UserID != "u-9" || creds.Username != "Alice" {
		t.Errorf("creds = %+v", creds)
	}
	if cfg.Gateway.BaseURL != "https://env-gw.example.com" {
		t.Errorf("gateway base_url = %q", cfg.Gateway.BaseURL)
	}
}

func TestLoadEnvUsernameFallsBackToConfig(t *testing.T) {
	t.Setenv(EnvAccessToken, "")
	t.Setenv(EnvUserID, "")
	t.Setenv(EnvUsername, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.General.Username = "Dana"

	creds := LoadEnv(cfg)
	if creds.SignedIn() {
		t.Error("expected anonymous without token")
	}
	if creds.Username != "Dana" {
		t.Errorf("username = %q", creds.Username)
	}
}
