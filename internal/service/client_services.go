// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-open-banking/internal/adapter"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/internal/validators"
)

// ClientServices aggregates the services used by the REPL.
type ClientServices struct {
	TokenService   ClientTokenService
	BankingService ClientBankingService
}

// NewClientServices builds every client service on top of bankingAdapter.
func NewClientServices(bankingAdapter adapter.BankingAdapter, log *logger.Logger, opts ...TokenServiceOption) *ClientServices {
	return &ClientServices{
		TokenService:   NewClientTokenService(bankingAdapter, log, opts...),
		BankingService: NewClientBankingService(bankingAdapter, validators.NewBankingDataValidator(), log),
	}
}
