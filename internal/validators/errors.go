// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAccountID     = errors.New("account id is required")
	ErrEmptyAccountNumber = errors.New("account number is required")
	ErrEmptyType          = errors.New("transaction type is required")
	ErrNegativeAmount     = errors.New("transaction amount must not be negative")
)
