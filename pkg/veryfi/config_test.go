package veryfi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"client id only", Config{ClientID: "c1"}, false},
		{"with secret", Config{ClientID: "c1", ClientSecret: "s"}, false},
		{"full credentials", Config{ClientID: "c1", ClientSecret: "s", Username: "bob", APIKey: "k"}, false},
		{"missing client id", Config{}, true},
		{"username without api key", Config{ClientID: "c1", Username: "bob"}, true},
		{"api key without username", Config{ClientID: "c1", APIKey: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_SigningEnabled(t *testing.T) {
	assert.False(t, (&Config{ClientID: "c1"}).SigningEnabled())
	assert.True(t, (&Config{ClientID: "c1", ClientSecret: "s"}).SigningEnabled())
}

func TestLoadConfig(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		t.Setenv("VERYFI_CLIENT_ID", "c1")
		t.Setenv("VERYFI_CLIENT_SECRET", "s3cr3t")
		t.Setenv("VERYFI_USERNAME", "bob")
		t.Setenv("VERYFI_API_KEY", "k123")
		t.Setenv("VERYFI_BASE_URL", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "c1", cfg.ClientID)
		assert.Equal(t, "s3cr3t", cfg.ClientSecret)
		assert.Equal(t, "bob", cfg.Username)
		assert.Equal(t, "k123", cfg.APIKey)
		assert.Equal(t, BaseURL, cfg.baseURL())
		assert.Equal(t, APITimeout, cfg.timeout())
	})

	t.Run("invalid pairing", func(t *testing.T) {
		t.Setenv("VERYFI_CLIENT_ID", "c1")
		t.Setenv("VERYFI_CLIENT_SECRET", "")
		t.Setenv("VERYFI_USERNAME", "bob")
		t.Setenv("VERYFI_API_KEY", "")
		t.Setenv("VERYFI_BASE_URL", "")

		_, err := LoadConfig()
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})
}
