// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-open-banking/models"
)

const (
	accountNumberFiller = "xxxxxx"
	amountPlaceholder   = "xxxxx.xx"

	accountNumberHead = 2
	accountNumberTail = 4
)

// MaskAccountNumber keeps the first two and last four characters of number
// and replaces the middle with a fixed filler. Numbers too short to keep
// both ends are replaced by the filler alone.
func MaskAccountNumber(number string) string {
	runes := []rune(number)
	if len(runes) < accountNumberHead+accountNumberTail {
		return accountNumberFiller
	}
	return string(runes[:accountNumberHead]) + accountNumberFiller + string(runes[len(runes)-accountNumberTail:])
}

// FormatAmount renders a transaction amount as currency followed by a
// signed, right-aligned value. DEBIT is negative, everything else positive.
func FormatAmount(tx models.Transaction, currency string, private bool) string {
	sign := "+"
	if tx.IsDebit() {
		sign = "-"
	}

	value := amountPlaceholder
	if !private {
		value = tx.Amount.Abs().StringFixed(2)
	}

	return fmt.Sprintf("%s%12s", currency, sign+value)
}

func accountNumber(account models.Account, private bool) string {
	if private {
		return MaskAccountNumber(account.Number)
	}
	return account.Number
}
