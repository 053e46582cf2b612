// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewCommandID returns a time-ordered identifier for one REPL command.
// It prefers UUIDv7 so ids sort by creation time in the log file and falls
// back to a random v4 id.
func NewCommandID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
