// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-open-banking/internal/app"
	"github.com/MKhiriev/go-open-banking/internal/service"
	"github.com/MKhiriev/go-open-banking/internal/session"
)

var (
	// ErrUserQuit is returned by the quit command.
	ErrUserQuit = errors.New("user quit")
	// ErrInputClosed is returned when stdin reaches EOF.
	ErrInputClosed = errors.New("input closed")
	// ErrInvalidSelection is logged when an account index cannot be used.
	ErrInvalidSelection = errors.New("invalid account selection")
)

// humanizeError turns a command error into the single line shown to the
// operator. Empty means nothing should be printed.
func humanizeError(err error) string {
	if err == nil || errors.Is(err, ErrUserQuit) || errors.Is(err, ErrInputClosed) {
		return ""
	}

	var fetchErr *service.FetchError
	switch {
	case errors.As(err, &fetchErr):
		return fetchErr.Error()
	case errors.Is(err, service.ErrExchangeFailed), errors.Is(err, service.ErrMissingCredentials):
		return app.MsgLoginFailed
	case errors.Is(err, session.ErrNoAccountSelected):
		return app.MsgNoAccountSelected
	}

	return err.Error()
}
