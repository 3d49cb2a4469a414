package apiclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsg  string
	}{
		{
			name:   "Valid config",
			config: &Config{BaseURL: "http://75.119.131.124:8080"},
		},
		{
			name:      "Missing base URL",
			config:    &Config{},
			wantError: true,
			errorMsg:  "baseUrl",
		},
		{
			name:      "Invalid URL scheme",
			config:    &Config{BaseURL: "ftp://meters.example.com"},
			wantError: true,
			errorMsg:  "scheme",
		},
		{
			name:      "Missing host",
			config:    &Config{BaseURL: "http://"},
			wantError: true,
			errorMsg:  "host",
		},
		{
			name:      "Negative timeout",
			config:    &Config{BaseURL: "https://meters.example.com", Timeout: -1 * time.Second},
			wantError: true,
			errorMsg:  "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_NewHTTPClient(t *testing.T) {
	insecure := false
	cfg := &Config{BaseURL: "https://meters.example.com", Timeout: 5 * time.Second, TLSVerify: &insecure}

	hc := cfg.NewHTTPClient()
	assert.Equal(t, 5*time.Second, hc.Timeout)

	defaults := DefaultConfig()
	assert.Equal(t, DefaultBaseURL, defaults.BaseURL)
	assert.Zero(t, defaults.NewHTTPClient().Timeout)
}
