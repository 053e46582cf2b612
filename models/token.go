// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is a bearer access token obtained through the client-credentials
// grant. There is no refresh token: once expired, a new exchange is needed.
type Token struct {
	// Value is the opaque access token sent in the Authorization header.
	Value string

	// ExpiresAt is the absolute instant after which the token is rejected.
	ExpiresAt time.Time
}

// IsValid reports whether the token has a value and now is before
// ExpiresAt. A zero Token is never valid.
func (t Token) IsValid(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}

// TokenResponse is the JSON body returned by the OAuth2 token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64  `json:"expires_in"`
	Scope     string `json:"scope"`
}
