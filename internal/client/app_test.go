// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-open-banking/internal/adapter/fakebank"
	"github.com/MKhiriev/go-open-banking/internal/config"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeBank(t *testing.T) *fakebank.Server {
	t.Helper()

	bank := fakebank.New(fakebank.Options{
		ClientID:     "id",
		ClientSecret: "secret",
		Token:        "tok",
		ExpiresIn:    1799,
		Accounts: []models.Account{
			{ID: "A0", Number: "1000000000", Name: "Mr J Doe", ProductName: "Private Bank Account"},
			{ID: "A1", Number: "1100000001", Name: "Mr J Doe", ProductName: "Savings"},
		},
		Transactions: map[string][]models.Transaction{
			"A1": {
				{AccountID: "A1", Type: "DEBIT", Status: "POSTED", Description: "RENT", PostingDate: "2026-10-01", Amount: decimal.RequireFromString("9000")},
			},
		},
		Balances: map[string]models.Balance{
			"A1": {AccountID: "A1", CurrentBalance: decimal.RequireFromString("123.4"), AvailableBalance: decimal.RequireFromString("100"), Currency: "ZAR"},
		},
	})
	t.Cleanup(bank.Close)

	return bank
}

func newTestConfig(baseURL string, creds models.Credentials) *config.ClientConfig {
	return &config.ClientConfig{
		App: config.ClientApp{
			Currency:       "ZAR",
			PrivacyCommand: true,
			StartPrivate:   true,
		},
		Credentials: creds,
		Adapter: config.ClientAdapter{
			BaseURL:        baseURL,
			RequestTimeout: 5 * time.Second,
		},
	}
}

func runApp(t *testing.T, cfg *config.ClientConfig, input string) string {
	t.Helper()

	out := &bytes.Buffer{}
	app, err := NewApp(cfg, models.NewAppBuildInfo("test", "", ""), strings.NewReader(input), out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func TestApp_Run_AccountsTransactionsBalance(t *testing.T) {
	bank := newFakeBank(t)
	cfg := newTestConfig(bank.URL, models.Credentials{ClientID: "id", ClientSecret: "secret"})

	out := runApp(t, cfg, "accounts\n1\ntransactions\npvt\nbal\nquit\n")

	assert.Contains(t, out, "Investec Open Banking REPL")
	assert.Contains(t, out, "Successfully logged in")
	assert.Contains(t, out, "11xxxxxx0001")
	assert.Contains(t, out, "RENT")
	assert.Contains(t, out, "ZAR   -xxxxx.xx")
	assert.Contains(t, out, "Current Balance: ZAR 123.40")
	assert.Contains(t, out, "Available Balance: ZAR 100.00")

	assert.Equal(t, 1, bank.TokenRequests())
	assert.Equal(t, 3, bank.DataRequests())
	assert.NotEmpty(t, bank.LastRequestID())
}

func TestApp_Run_PromptsForCredentials(t *testing.T) {
	bank := newFakeBank(t)
	cfg := newTestConfig(bank.URL, models.Credentials{})

	out := runApp(t, cfg, "login\nid\nsecret\n")

	assert.Contains(t, out, "Enter Client ID")
	assert.Contains(t, out, "Successfully logged in")
	assert.Equal(t, 1, bank.TokenRequests())
}

func TestApp_Run_WrongCredentials(t *testing.T) {
	bank := newFakeBank(t)
	cfg := newTestConfig(bank.URL, models.Credentials{ClientID: "id", ClientSecret: "wrong"})

	out := runApp(t, cfg, "accounts\nquit\n")

	assert.Contains(t, out, "Error logging in")
	assert.Equal(t, 0, bank.DataRequests())
}

func TestApp_Run_FetchFailure(t *testing.T) {
	bank := newFakeBank(t)
	bank.FailData(true)
	cfg := newTestConfig(bank.URL, models.Credentials{ClientID: "id", ClientSecret: "secret"})

	out := runApp(t, cfg, "accounts\n")

	assert.Contains(t, out, "Error fetching accounts")
}

func TestNewApp_InvalidBaseURL(t *testing.T) {
	cfg := newTestConfig("http://[::1", models.Credentials{})

	_, err := NewApp(cfg, models.NewAppBuildInfo("", "", ""), strings.NewReader(""), &bytes.Buffer{}, logger.Nop())

	assert.Error(t, err)
}
