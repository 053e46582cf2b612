// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-open-banking/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldAccountID targets the account identifier used in request paths.
	FieldAccountID = "account_id"

	// FieldAccountNumber targets the account number shown to the operator.
	FieldAccountNumber = "account_number"

	// FieldType targets the transaction type that decides the amount sign.
	FieldType = "type"

	// FieldAmount targets the unsigned transaction amount.
	FieldAmount = "amount"
)

// BankingDataValidator validates accounts and transactions returned by the
// banking API. Without explicit fields only the account id is required,
// since it is used in request paths; transactions are accepted as is.
type BankingDataValidator struct {
}

func NewBankingDataValidator() Validator {
	return &BankingDataValidator{}
}

func (v *BankingDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)
	case []models.Account:
		for i, account := range value {
			if err := v.validateAccount(ctx, account, fields...); err != nil {
				return fmt.Errorf("account %d: %w", i, err)
			}
		}
		return nil

	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)
	case []models.Transaction:
		for i, tx := range value {
			if err := v.validateTransaction(ctx, tx, fields...); err != nil {
				return fmt.Errorf("transaction %d: %w", i, err)
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *BankingDataValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if account.ID == "" {
				return ErrEmptyAccountID
			}
		case FieldAccountNumber:
			if account.Number == "" {
				return ErrEmptyAccountNumber
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *BankingDataValidator) validateTransaction(_ context.Context, tx models.Transaction, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldType:
			if tx.Type == "" {
				return ErrEmptyType
			}
		case FieldAmount:
			if tx.Amount.IsNegative() {
				return ErrNegativeAmount
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
