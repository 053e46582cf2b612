// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// banking REPL: the resty HTTP client wrapper, command identifiers and
// type-safe context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CommandIDCtxKey is the key used to store the identifier of the REPL
// command currently being executed.
var CommandIDCtxKey = contextKey("commandID")

// WithCommandID returns a copy of ctx carrying commandID.
func WithCommandID(ctx context.Context, commandID string) context.Context {
	return context.WithValue(ctx, CommandIDCtxKey, commandID)
}

// GetCommandIDFromContext retrieves the command identifier from the context.
//
// Returns ok == false when the value is missing or is not a non-empty string.
func GetCommandIDFromContext(ctx context.Context) (string, bool) {
	commandID, ok := ctx.Value(CommandIDCtxKey).(string)
	return commandID, ok && commandID != ""
}
