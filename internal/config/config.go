// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultBaseURL is the production Open API host.
	DefaultBaseURL = "https://openapi.investec.com"
	// DefaultRequestTimeout bounds every outbound HTTP call.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultCurrency is used when rendering transaction amounts.
	DefaultCurrency = "ZAR"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation and REPL behaviour settings.
	App App `envPrefix:"APP_"`

	// Credentials holds the OAuth2 client credentials. Both values are
	// optional; missing ones are prompted for on first login.
	Credentials Credentials `envPrefix:"INVESTEC_"`

	// Adapter holds the banking API endpoint and timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds diagnostic log settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds presentation and REPL behaviour settings.
type App struct {
	// Currency prefixes rendered transaction amounts.
	// Env: APP_CURRENCY
	Currency string `env:"CURRENCY"`

	// DisablePrivacyCommand removes the private/pvt toggle from the REPL.
	// Env: APP_DISABLE_PRIVACY_COMMAND
	DisablePrivacyCommand bool `env:"DISABLE_PRIVACY_COMMAND"`

	// StartUnmasked starts the session with privacy mode off.
	// Env: APP_START_UNMASKED
	StartUnmasked bool `env:"START_UNMASKED"`

	// MaskBalances masks balances as well as amounts in privacy mode.
	// Env: APP_MASK_BALANCES
	MaskBalances bool `env:"MASK_BALANCES"`
}

// Credentials holds the OAuth2 client-credentials pair.
type Credentials struct {
	// Env: INVESTEC_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Env: INVESTEC_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
}

// Adapter holds settings for the outbound banking API adapter.
type Adapter struct {
	// BaseURL is the API host, with or without scheme
	// (e.g. "https://openapi.investec.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration of a single API call
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds diagnostic log settings.
type Log struct {
	// Path of the JSON log file. Empty means a file named "logs" next to
	// the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Currency: DefaultCurrency},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
