// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-open-banking/internal/adapter"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/internal/validators"
	"github.com/MKhiriev/go-open-banking/models"
)

// Resource names used in [FetchError].
const (
	ResourceAccounts     = "accounts"
	ResourceTransactions = "transactions"
	ResourceBalance      = "balance"
)

type clientBankingService struct {
	adapter   adapter.BankingAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientBankingService returns a [ClientBankingService] backed by
// bankingAdapter. Payloads rejected by validator are reported as failed
// fetches.
func NewClientBankingService(bankingAdapter adapter.BankingAdapter, validator validators.Validator, log *logger.Logger) ClientBankingService {
	return &clientBankingService{adapter: bankingAdapter, validator: validator, logger: log}
}

func (s *clientBankingService) ListAccounts(ctx context.Context, token models.Token) ([]models.Account, error) {
	accounts, err := s.adapter.Accounts(ctx, token.Value)
	if err == nil {
		err = s.validator.Validate(ctx, accounts)
	}
	if err != nil {
		s.logFailure(ctx, ResourceAccounts, err)
		return nil, mapFetchError(ResourceAccounts, err)
	}

	return accounts, nil
}

func (s *clientBankingService) ListTransactions(ctx context.Context, token models.Token, accountID string) ([]models.Transaction, error) {
	transactions, err := s.adapter.Transactions(ctx, token.Value, accountID)
	if err == nil {
		err = s.validator.Validate(ctx, transactions)
	}
	if err != nil {
		s.logFailure(ctx, ResourceTransactions, err)
		return nil, mapFetchError(ResourceTransactions, err)
	}

	return transactions, nil
}

func (s *clientBankingService) GetBalance(ctx context.Context, token models.Token, accountID string) (models.Balance, error) {
	balance, err := s.adapter.Balance(ctx, token.Value, accountID)
	if err != nil {
		s.logFailure(ctx, ResourceBalance, err)
		return models.Balance{}, mapFetchError(ResourceBalance, err)
	}

	return balance, nil
}

func (s *clientBankingService) logFailure(ctx context.Context, resource string, err error) {
	logger.FromContextOr(ctx, s.logger).Error().Err(err).Str("resource", resource).Msg("fetch failed")
}
