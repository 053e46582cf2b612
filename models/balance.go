// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Balance holds the current and available balance of an account in the
// account's currency.
type Balance struct {
	AccountID        string          `json:"accountId"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Currency         string          `json:"currency"`
}
