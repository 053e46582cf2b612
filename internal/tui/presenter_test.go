// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MKhiriev/go-open-banking/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter(maskBalances bool) *Presenter {
	return NewPresenter(lipgloss.NewRenderer(&bytes.Buffer{}), "ZAR", maskBalances)
}

var presenterAccounts = []models.Account{
	{ID: "A1", Number: "1234567890", Name: "Mr J Doe", ProductName: "Private Bank Account"},
	{ID: "A2", Number: "9876543210", Name: "Mr J Doe", ProductName: "Savings"},
}

func TestPresenter_Accounts(t *testing.T) {
	p := newTestPresenter(false)

	private := p.Accounts(presenterAccounts, true)
	assert.Contains(t, private, "Account Number")
	assert.Contains(t, private, "12xxxxxx7890")
	assert.Contains(t, private, "98xxxxxx3210")
	assert.NotContains(t, private, "1234567890")
	assert.Contains(t, private, "Private Bank Account")

	public := p.Accounts(presenterAccounts, false)
	assert.Contains(t, public, "1234567890")
	assert.Contains(t, public, "9876543210")
}

func TestPresenter_Transactions(t *testing.T) {
	p := newTestPresenter(false)
	txs := []models.Transaction{
		{
			Type:        models.TransactionTypeDebit,
			Status:      "POSTED",
			Description: "COFFEE",
			CardNumber:  "400000xxxxxx0001",
			PostingDate: "2026-10-01",
			ValueDate:   "2026-10-02",
			Amount:      decimal.RequireFromString("35.5"),
		},
	}

	out := p.Transactions(txs, false)
	for _, want := range []string{"Date", "Value Date", "COFFEE", "POSTED", "400000xxxxxx0001", "2026-10-01", "2026-10-02", "ZAR      -35.50"} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, p.Transactions(txs, true), "ZAR   -xxxxx.xx")
}

func TestPresenter_Balance(t *testing.T) {
	balance := models.Balance{
		AccountID:        "A1",
		CurrentBalance:   decimal.RequireFromString("964.5"),
		AvailableBalance: decimal.RequireFromString("1000"),
		Currency:         "ZAR",
	}

	t.Run("shown by default even when private", func(t *testing.T) {
		out := newTestPresenter(false).Balance(balance, true)
		assert.Equal(t, "Current Balance: ZAR 964.50\nAvailable Balance: ZAR 1000.00", out)
	})

	t.Run("masked when enabled and private", func(t *testing.T) {
		out := newTestPresenter(true).Balance(balance, true)
		assert.Equal(t, "Current Balance: ZAR xxxxx.xx\nAvailable Balance: ZAR xxxxx.xx", out)
	})

	t.Run("masking enabled but not private", func(t *testing.T) {
		out := newTestPresenter(true).Balance(balance, false)
		assert.True(t, strings.HasPrefix(out, "Current Balance: ZAR 964.50"))
	})

	t.Run("falls back to configured currency", func(t *testing.T) {
		noCurrency := balance
		noCurrency.Currency = ""
		out := newTestPresenter(false).Balance(noCurrency, false)
		assert.Contains(t, out, "Available Balance: ZAR 1000.00")
	})
}

func TestPresenter_AccountLabel(t *testing.T) {
	p := newTestPresenter(false)

	assert.Equal(t, "12xxxxxx7890/Mr J Doe/Private Bank Account", p.AccountLabel(presenterAccounts[0], true))
	assert.Equal(t, "1234567890/Mr J Doe/Private Bank Account", p.AccountLabel(presenterAccounts[0], false))
}
