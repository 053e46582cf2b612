// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the state of one interactive banking session:
// credentials, the token manager, the last account listing, the selected
// account and the privacy flag.
//
// A Session is created at process start, lives in memory only and is used
// from the single REPL goroutine, so it carries no locking.
package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-open-banking/internal/service"
	"github.com/MKhiriev/go-open-banking/models"
)

// Session is the mutable state shared by REPL commands.
type Session struct {
	credentials models.Credentials
	tokens      service.ClientTokenService

	accounts []models.Account
	listed   bool
	selected *models.Account

	private bool
}

// New returns a session starting with creds (possibly incomplete) and the
// given privacy mode.
func New(creds models.Credentials, tokens service.ClientTokenService, private bool) *Session {
	return &Session{credentials: creds, tokens: tokens, private: private}
}

// Credentials returns the current client credentials.
func (s *Session) Credentials() models.Credentials {
	return s.credentials
}

// HasCredentials reports whether both client id and secret are known.
func (s *Session) HasCredentials() bool {
	return s.credentials.IsComplete()
}

// SetCredentials replaces the credentials. The cached token belongs to the
// previous client, so it is dropped as well.
func (s *Session) SetCredentials(creds models.Credentials) {
	s.credentials = creds
	s.tokens.Invalidate()
}

// Login returns a valid token, exchanging the credentials only when the
// cached token is missing or expired.
func (s *Session) Login(ctx context.Context) (models.Token, error) {
	token, err := s.tokens.EnsureValidToken(ctx, s.credentials)
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}
	return token, nil
}

// Logout drops the token. Credentials and the selected account survive.
func (s *Session) Logout() {
	s.tokens.Invalidate()
}

// IsLoggedIn reports whether the session holds an unexpired token.
func (s *Session) IsLoggedIn() bool {
	return s.tokens.IsLoggedIn()
}

// Token returns the current token, which may be expired.
func (s *Session) Token() models.Token {
	return s.tokens.Token()
}

// SetAccounts records the result of a successful account listing. An empty
// listing clears the selection.
func (s *Session) SetAccounts(accounts []models.Account) {
	s.accounts = append([]models.Account(nil), accounts...)
	s.listed = true
	if len(s.accounts) == 0 {
		s.selected = nil
	}
}

// Accounts returns a copy of the last listing.
func (s *Session) Accounts() []models.Account {
	return append([]models.Account(nil), s.accounts...)
}

// Select makes the account at index of the last listing the selected one.
// On error the selection is unchanged.
func (s *Session) Select(index int) error {
	if !s.listed {
		return ErrAccountsNotListed
	}
	if index < 0 || index >= len(s.accounts) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrSelectionOutOfRange, index, len(s.accounts))
	}

	account := s.accounts[index]
	s.selected = &account
	return nil
}

// ClearSelection removes the selected account.
func (s *Session) ClearSelection() {
	s.selected = nil
}

// SelectedAccount returns the selected account, if any.
func (s *Session) SelectedAccount() (models.Account, bool) {
	if s.selected == nil {
		return models.Account{}, false
	}
	return *s.selected, true
}

// RequireSelectedAccount returns the selected account or
// [ErrNoAccountSelected].
func (s *Session) RequireSelectedAccount() (models.Account, error) {
	account, ok := s.SelectedAccount()
	if !ok {
		return models.Account{}, ErrNoAccountSelected
	}
	return account, nil
}

// IsPrivate reports whether sensitive values are masked in output.
func (s *Session) IsPrivate() bool {
	return s.private
}

// TogglePrivacy flips privacy mode and returns the new value.
func (s *Session) TogglePrivacy() bool {
	s.private = !s.private
	return s.private
}
