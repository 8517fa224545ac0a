package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults match the local development backends; both hosts are
// parameterized through the config file and environment.
const (
	DefaultGatewayURL  = "http://localhost:8000"
	DefaultHotelAPIURL = "http://localhost:8001"
)

// AppConfig is the persisted client configuration.
type AppConfig struct {
	Gateway       GatewayConfig       `yaml:"gateway"`
	HotelAPI      HotelAPIConfig      `yaml:"hotel_api"`
	Authorization AuthorizationConfig `yaml:"authorization"`
	General       GeneralConfig       `yaml:"general"`
}

type GatewayConfig struct {
	BaseURL string `yaml:"base_url"`
}

type HotelAPIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// AuthorizationConfig tunes the out-of-band authorization poller.
type AuthorizationConfig struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	PollMaxAttempts     int `yaml:"poll_max_attempts"`
}

type GeneralConfig struct {
	Username string `yaml:"username"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Gateway:  GatewayConfig{BaseURL: DefaultGatewayURL},
		HotelAPI: HotelAPIConfig{BaseURL: DefaultHotelAPIURL},
		Authorization: AuthorizationConfig{
			PollIntervalSeconds: 5,
			PollMaxAttempts:     12,
		},
	}
}

func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "concierge"), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file from the user config directory. A missing
// file yields the defaults.
func Load() (*AppConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path, filling unset fields with
// defaults.
func LoadFrom(path string) (*AppConfig, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Gateway.BaseURL == "" {
		cfg.Gateway.BaseURL = DefaultGatewayURL
	}
	if cfg.HotelAPI.BaseURL == "" {
		cfg.HotelAPI.BaseURL = DefaultHotelAPIURL
	}
	if cfg.Authorization.PollIntervalSeconds <= 0 {
		cfg.Authorization.PollIntervalSeconds = 5
	}
	if cfg.Authorization.PollMaxAttempts <= 0 {
		cfg.Authorization.PollMaxAttempts = 12
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *AppConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
