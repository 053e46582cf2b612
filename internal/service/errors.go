// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication errors. Every failed token exchange wraps
// [ErrExchangeFailed].
var (
	ErrExchangeFailed     = errors.New("token exchange failed")
	ErrMissingCredentials = errors.New("client id and secret are required")
	ErrInvalidCredentials = errors.New("invalid client credentials")
	ErrInvalidTokenExpiry = errors.New("token response has no positive expiry")
	ErrEmptyAccessToken   = errors.New("token response has no access token")
)

// ErrFetchFailed is wrapped by every [FetchError].
var ErrFetchFailed = errors.New("fetch failed")

// FetchError reports a failed data request. The message intentionally does
// not depend on the status code: callers print it as is.
type FetchError struct {
	// Resource names what was being fetched ("accounts", "transactions",
	// "balance").
	Resource string
	// Err is the underlying transport error.
	Err error
}

func (e *FetchError) Error() string {
	return "Error fetching " + e.Resource
}

// Unwrap exposes both [ErrFetchFailed] and the transport error to
// errors.Is and errors.As.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Err}
}
