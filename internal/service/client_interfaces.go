// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client-side business services of the banking
// REPL: the token manager and the read-only banking operations built on top
// of [adapter.BankingAdapter].
package service

import (
	"context"

	"github.com/MKhiriev/go-open-banking/models"
)

// ClientTokenService manages the bearer token of the current session.
type ClientTokenService interface {
	// EnsureValidToken returns the cached token while it is unexpired,
	// without a network call. Otherwise it performs a client-credentials
	// exchange with creds and caches the result. A failed exchange wraps
	// [ErrExchangeFailed] and leaves the cached token untouched.
	EnsureValidToken(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Token returns the cached token, which may be expired or empty.
	Token() models.Token

	// IsLoggedIn reports whether the cached token is currently valid.
	IsLoggedIn() bool

	// Invalidate drops the cached token.
	Invalidate()
}

// ClientBankingService exposes the read-only banking operations. It never
// logs in on its own: callers pass a token obtained from
// [ClientTokenService]. Every failure is a [*FetchError].
type ClientBankingService interface {
	// ListAccounts returns the accounts visible to token.
	ListAccounts(ctx context.Context, token models.Token) ([]models.Account, error)

	// ListTransactions returns the transactions of accountID.
	ListTransactions(ctx context.Context, token models.Token, accountID string) ([]models.Transaction, error)

	// GetBalance returns the balance of accountID.
	GetBalance(ctx context.Context, token models.Token, accountID string) (models.Balance, error)
}
