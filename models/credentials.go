// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the OAuth2 client-credentials pair issued by the bank's
// developer portal. Both values are required for a token exchange.
type Credentials struct {
	// ClientID identifies the API client.
	ClientID string `json:"client_id"`

	// ClientSecret is the confidential half of the pair. It must never be
	// logged or rendered.
	ClientSecret string `json:"-"`
}

// IsComplete reports whether both the client id and the secret are set.
func (c Credentials) IsComplete() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
