package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommandIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "missing",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "wrong type",
			ctx:    context.WithValue(context.Background(), CommandIDCtxKey, 42),
			wantOK: false,
		},
		{
			name:   "empty",
			ctx:    WithCommandID(context.Background(), ""),
			wantOK: false,
		},
		{
			name:   "present",
			ctx:    WithCommandID(context.Background(), "cmd-1"),
			wantID: "cmd-1",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetCommandIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "commandID", CommandIDCtxKey.String())
}

func TestNewCommandID_IsUniqueUUID(t *testing.T) {
	a := NewCommandID()
	b := NewCommandID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
