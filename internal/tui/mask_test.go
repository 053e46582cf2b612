// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/go-open-banking/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "typical", number: "1234567890", want: "12xxxxxx7890"},
		{name: "exactly six", number: "123456", want: "12xxxxxx3456"},
		{name: "short", number: "12345", want: "xxxxxx"},
		{name: "empty", number: "", want: "xxxxxx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskAccountNumber(tt.number))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	debit := models.Transaction{Type: models.TransactionTypeDebit, Amount: decimal.RequireFromString("12.5")}
	credit := models.Transaction{Type: models.TransactionTypeCredit, Amount: decimal.RequireFromString("1000")}
	other := models.Transaction{Type: "FEE", Amount: decimal.RequireFromString("3.456")}

	tests := []struct {
		name    string
		tx      models.Transaction
		private bool
		want    string
	}{
		{name: "debit", tx: debit, want: "ZAR      -12.50"},
		{name: "credit", tx: credit, want: "ZAR    +1000.00"},
		{name: "unknown type is credit", tx: other, want: "ZAR       +3.46"},
		{name: "private debit", tx: debit, private: true, want: "ZAR   -xxxxx.xx"},
		{name: "private credit", tx: credit, private: true, want: "ZAR   +xxxxx.xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.tx, "ZAR", tt.private))
		})
	}
}

func TestFormatAmount_DoesNotChangeTransaction(t *testing.T) {
	tx := models.Transaction{Type: models.TransactionTypeDebit, Amount: decimal.RequireFromString("42.10")}

	_ = FormatAmount(tx, "ZAR", true)

	assert.Equal(t, "42.1", tx.Amount.String())
}
