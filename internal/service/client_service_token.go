// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-open-banking/internal/adapter"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/models"
)

// TokenServiceOption customises a token service.
type TokenServiceOption func(*clientTokenService)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *clientTokenService) {
		s.now = now
	}
}

type clientTokenService struct {
	adapter adapter.BankingAdapter
	token   models.Token
	now     func() time.Time
	logger  *logger.Logger
}

// NewClientTokenService returns a [ClientTokenService] exchanging
// credentials through bankingAdapter.
func NewClientTokenService(bankingAdapter adapter.BankingAdapter, log *logger.Logger, opts ...TokenServiceOption) ClientTokenService {
	s := &clientTokenService{adapter: bankingAdapter, now: time.Now, logger: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *clientTokenService) EnsureValidToken(ctx context.Context, creds models.Credentials) (models.Token, error) {
	if s.IsLoggedIn() {
		return s.token, nil
	}

	if !creds.IsComplete() {
		return models.Token{}, ErrMissingCredentials
	}

	log := logger.FromContextOr(ctx, s.logger)
	log.Debug().Msg("exchanging client credentials")

	resp, err := s.adapter.RequestToken(ctx, creds)
	if err != nil {
		log.Warn().Err(err).Msg("token exchange failed")
		return models.Token{}, mapExchangeError(err)
	}

	issuedAt := s.now()
	switch {
	case resp.AccessToken == "":
		return models.Token{}, mapExchangeError(ErrEmptyAccessToken)
	case resp.ExpiresIn <= 0:
		return models.Token{}, mapExchangeError(ErrInvalidTokenExpiry)
	}

	s.token = models.Token{
		Value:     resp.AccessToken,
		ExpiresAt: issuedAt.Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	log.Info().Time("expires_at", s.token.ExpiresAt).Msg("access token issued")

	return s.token, nil
}

func (s *clientTokenService) Token() models.Token {
	return s.token
}

func (s *clientTokenService) IsLoggedIn() bool {
	return s.token.IsValid(s.now())
}

func (s *clientTokenService) Invalidate() {
	s.token = models.Token{}
}
