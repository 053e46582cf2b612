// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the banking Open API.
//
// The primary abstraction is [BankingAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPBankingAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-open-banking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/banking_adapter_mock.go -package=mock

// BankingAdapter defines stateless access to the banking Open API. The
// adapter never stores tokens: every authorized call receives the bearer
// token explicitly, so session state stays with the caller.
type BankingAdapter interface {
	// RequestToken performs the OAuth2 client-credentials exchange with
	// HTTP Basic authentication and scope "accounts". Returns the decoded
	// token response or an error if the request fails or the server
	// responds with a non-2xx status.
	RequestToken(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// Accounts lists the accounts visible to the bearer token.
	Accounts(ctx context.Context, token string) ([]models.Account, error)

	// Transactions lists the transactions of accountID.
	Transactions(ctx context.Context, token, accountID string) ([]models.Transaction, error)

	// Balance returns the balance of accountID.
	Balance(ctx context.Context, token, accountID string) (models.Balance, error)
}
