package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"currency": "USD",
			"start_unmasked": true,
			"mask_balances": true
		},
		"credentials": {
			"client_id": "json-id",
			"client_secret": "json-secret"
		},
		"adapter": {
			"base_url": "https://sandbox.example.com",
			"request_timeout": "20s"
		},
		"log": { "path": "/var/log/banking.log" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.App.Currency)
	assert.False(t, cfg.App.DisablePrivacyCommand)
	assert.True(t, cfg.App.StartUnmasked)
	assert.True(t, cfg.App.MaskBalances)
	assert.Equal(t, "json-id", cfg.Credentials.ClientID)
	assert.Equal(t, "json-secret", cfg.Credentials.ClientSecret)
	assert.Equal(t, "https://sandbox.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/log/banking.log", cfg.Log.Path)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"1m30s"`, 90 * time.Second, false},
		{"nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"later"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Minute).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
