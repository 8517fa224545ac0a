package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for runtime credentials. These are never
// written to the config file.
const (
	EnvAccessToken = "GARDEO_ACCESS_TOKEN"
	EnvUserID      = "GARDEO_USER_ID"
	EnvUsername    = "GARDEO_USERNAME"
	EnvGatewayURL  = "GARDEO_GATEWAY_URL"
	EnvHotelAPIURL = "GARDEO_HOTEL_API_URL"
)

// Credentials identifies the signed-in user for the current run.
type Credentials struct {
	AccessToken string
	UserID      string
	Username    string
}

// SignedIn reports whether a bearer token is available.
func (c Credentials) SignedIn() bool {
	return c.AccessToken != ""
}

// LoadEnv reads a .env file if one exists in the working directory and
// applies environment overrides to cfg. Existing environment variables
// win over .env entries.
func LoadEnv(cfg *AppConfig) Credentials {
	_ = godotenv.Load()

	if v := os.Getenv(EnvGatewayURL); v != "" {
		cfg.Gateway.BaseURL = v
	}
	if v := os.Getenv(EnvHotelAPIURL); v != "" {
		cfg.HotelAPI.BaseURL = v
	}

	creds := Credentials{
		AccessToken: os.Getenv(EnvAccessToken),
		UserID:      os.Getenv(EnvUserID),
		Username:    os.Getenv(EnvUsername),
	}
	if creds.Username == "" {
		creds.Username = cfg.General.Username
	}
	return creds
}
