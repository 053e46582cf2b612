// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-open-banking/internal/adapter"
)

// mapExchangeError translates a token endpoint failure into an
// authentication error wrapping [ErrExchangeFailed].
func mapExchangeError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrExchangeFailed, ErrInvalidCredentials)
	}

	return fmt.Errorf("%w: %w", ErrExchangeFailed, err)
}

// mapFetchError translates a data endpoint failure into a [FetchError].
func mapFetchError(resource string, err error) error {
	if err == nil {
		return nil
	}

	return &FetchError{Resource: resource, Err: err}
}
