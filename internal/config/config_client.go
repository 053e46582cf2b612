// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-open-banking/models"
	"github.com/spf13/pflag"
)

// ClientApp holds REPL behaviour settings.
type ClientApp struct {
	// Currency prefixes rendered transaction amounts.
	Currency string
	// PrivacyCommand enables the private/pvt toggle.
	PrivacyCommand bool
	// StartPrivate is the initial privacy mode of the session.
	StartPrivate bool
	// MaskBalances extends privacy masking to balances.
	MaskBalances bool
}

// ClientAdapter holds network settings used by the banking adapter.
type ClientAdapter struct {
	// BaseURL is the API host.
	BaseURL string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientLog holds diagnostic log settings.
type ClientLog struct {
	// Path of the log file; empty selects the default location.
	Path string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains REPL behaviour settings.
	App ClientApp
	// Credentials contains the initial client credentials, possibly empty.
	Credentials models.Credentials
	// Adapter contains the API endpoint and timeout.
	Adapter ClientAdapter
	// Log contains diagnostic log settings.
	Log ClientLog
}

// GetClientConfig loads flags from fs, environment variables, the optional
// JSON file and defaults, then maps and validates the client view.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Currency:       cfg.App.Currency,
			PrivacyCommand: !cfg.App.DisablePrivacyCommand,
			StartPrivate:   !cfg.App.StartUnmasked,
			MaskBalances:   cfg.App.MaskBalances,
		},
		Credentials: models.Credentials{
			ClientID:     cfg.Credentials.ClientID,
			ClientSecret: cfg.Credentials.ClientSecret,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{Path: cfg.Log.Path},
	}
}
