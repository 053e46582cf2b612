// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Transaction types reported by the API. Anything other than
// [TransactionTypeDebit] is rendered as a credit.
const (
	TransactionTypeDebit  = "DEBIT"
	TransactionTypeCredit = "CREDIT"
)

// Transaction is a single posted or pending movement on an account.
// Amount is always non-negative; the direction is carried by Type.
type Transaction struct {
	AccountID   string          `json:"accountId"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	CardNumber  string          `json:"cardNumber"`
	PostingDate string          `json:"postingDate"`
	ValueDate   string          `json:"valueDate"`
	ActionDate  string          `json:"actionDate"`
	Amount      decimal.Decimal `json:"amount"`
}

// IsDebit reports whether the transaction reduces the account balance.
func (t Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit
}
