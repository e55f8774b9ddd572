package veryfi

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the credentials and endpoint settings for one Veryfi
// client. It is read-only after the client is constructed.
type Config struct {
	// ClientID identifies the API client. Required.
	ClientID string
	// ClientSecret enables request signing when non-empty.
	ClientSecret string
	// Username and APIKey form the apikey Authorization pair. Set both or
	// neither.
	Username string
	APIKey   string
	// BaseURL overrides the production API endpoint. Defaults to BaseURL
	// when empty.
	BaseURL string
	// Timeout bounds each API call. Defaults to APITimeout when zero.
	Timeout time.Duration
}

// LoadConfig reads the client configuration from the environment.
func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		ClientID:     os.Getenv("VERYFI_CLIENT_ID"),
		ClientSecret: os.Getenv("VERYFI_CLIENT_SECRET"),
		Username:     os.Getenv("VERYFI_USERNAME"),
		APIKey:       os.Getenv("VERYFI_API_KEY"),
		BaseURL:      os.Getenv("VERYFI_BASE_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the credential invariants.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return &ConfigurationError{Reason: "VERYFI_CLIENT_ID is required"}
	}
	if c.Username != "" && c.APIKey == "" {
		return &ConfigurationError{Reason: "VERYFI_API_KEY is required when VERYFI_USERNAME is set"}
	}
	if c.APIKey != "" && c.Username == "" {
		return &ConfigurationError{Reason: "VERYFI_USERNAME is required when VERYFI_API_KEY is set"}
	}
	// ClientSecret is optional; without it requests go out unsigned
	return nil
}

// SigningEnabled reports whether requests made with this configuration carry
// signature headers.
func (c *Config) SigningEnabled() bool {
	return c.ClientSecret != ""
}

func (c *Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return BaseURL
}

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return APITimeout
}
