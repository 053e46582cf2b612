package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-open-banking/internal/adapter"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/internal/mock"
	"github.com/MKhiriev/go-open-banking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCreds = models.Credentials{ClientID: "client-id", ClientSecret: "client-secret"}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTokenSvc(t *testing.T, ctrl *gomock.Controller) (*clientTokenService, *mock.MockBankingAdapter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	mockAdapter := mock.NewMockBankingAdapter(ctrl)

	svc := NewClientTokenService(mockAdapter, logger.Nop(), WithClock(clock.Now)).(*clientTokenService)
	return svc, mockAdapter, clock
}

func TestClientTokenService_EnsureValidToken_Exchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, clock := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().RequestToken(ctx, testCreds).Return(models.TokenResponse{
		AccessToken: "tok-1",
		TokenType:   "Bearer",
		ExpiresIn:   1799,
		Scope:       "accounts",
	}, nil)

	token, err := svc.EnsureValidToken(ctx, testCreds)

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.Value)
	assert.Equal(t, clock.now.Add(1799*time.Second), token.ExpiresAt)
	assert.True(t, token.ExpiresAt.After(clock.now))
	assert.True(t, svc.IsLoggedIn())
	assert.Equal(t, token, svc.Token())
}

// TestClientTokenService_EnsureValidToken_Cached verifies that a second call
// before expiry issues no request (the adapter expects exactly one call).
func TestClientTokenService_EnsureValidToken_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, clock := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().RequestToken(ctx, testCreds).
		Return(models.TokenResponse{AccessToken: "tok-1", ExpiresIn: 60}, nil).
		Times(1)

	first, err := svc.EnsureValidToken(ctx, testCreds)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	second, err := svc.EnsureValidToken(ctx, testCreds)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClientTokenService_EnsureValidToken_ReexchangesAfterExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, clock := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().RequestToken(ctx, testCreds).Return(models.TokenResponse{AccessToken: "tok-1", ExpiresIn: 60}, nil),
		mockAdapter.EXPECT().RequestToken(ctx, testCreds).Return(models.TokenResponse{AccessToken: "tok-2", ExpiresIn: 60}, nil),
	)

	_, err := svc.EnsureValidToken(ctx, testCreds)
	require.NoError(t, err)

	clock.Advance(60 * time.Second)
	assert.False(t, svc.IsLoggedIn())

	token, err := svc.EnsureValidToken(ctx, testCreds)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token.Value)
}

// TestClientTokenService_EnsureValidToken_FailureKeepsPriorToken verifies
// that an expired token is superseded only by a successful exchange.
func TestClientTokenService_EnsureValidToken_FailureKeepsPriorToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, clock := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().RequestToken(ctx, testCreds).Return(models.TokenResponse{AccessToken: "tok-1", ExpiresIn: 10}, nil),
		mockAdapter.EXPECT().RequestToken(ctx, testCreds).Return(models.TokenResponse{}, errors.New("connection refused")),
	)

	prior, err := svc.EnsureValidToken(ctx, testCreds)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = svc.EnsureValidToken(ctx, testCreds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExchangeFailed)
	assert.Equal(t, prior, svc.Token())
	assert.False(t, svc.IsLoggedIn())
}

func TestClientTokenService_EnsureValidToken_Errors(t *testing.T) {
	tests := []struct {
		name     string
		resp     models.TokenResponse
		err      error
		wantErrs []error
	}{
		{
			name:     "unauthorized",
			err:      adapter.ErrUnauthorized,
			wantErrs: []error{ErrExchangeFailed, ErrInvalidCredentials},
		},
		{
			name:     "server error",
			err:      adapter.ErrInternalServerError,
			wantErrs: []error{ErrExchangeFailed, adapter.ErrInternalServerError},
		},
		{
			name:     "empty access token",
			resp:     models.TokenResponse{ExpiresIn: 60},
			wantErrs: []error{ErrExchangeFailed, ErrEmptyAccessToken},
		},
		{
			name:     "zero expiry",
			resp:     models.TokenResponse{AccessToken: "tok"},
			wantErrs: []error{ErrExchangeFailed, ErrInvalidTokenExpiry},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _ := newTestTokenSvc(t, ctrl)

			mockAdapter.EXPECT().RequestToken(gomock.Any(), testCreds).Return(tt.resp, tt.err)

			_, err := svc.EnsureValidToken(context.Background(), testCreds)

			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			assert.False(t, svc.IsLoggedIn())
			assert.Equal(t, models.Token{}, svc.Token())
		})
	}
}

func TestClientTokenService_EnsureValidToken_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestTokenSvc(t, ctrl)

	_, err := svc.EnsureValidToken(context.Background(), models.Credentials{ClientID: "only-id"})

	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestClientTokenService_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().RequestToken(ctx, testCreds).Return(models.TokenResponse{AccessToken: "tok", ExpiresIn: 60}, nil)

	_, err := svc.EnsureValidToken(ctx, testCreds)
	require.NoError(t, err)

	svc.Invalidate()

	assert.False(t, svc.IsLoggedIn())
	assert.Equal(t, models.Token{}, svc.Token())
}

// TestClientTokenService_EnsureValidToken_LogHasNoCredentials verifies that
// neither the credentials nor the issued token reach the log file.
func TestClientTokenService_EnsureValidToken_LogHasNoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBankingAdapter(ctrl)
	path := filepath.Join(t.TempDir(), "cli.log")
	ctx := context.Background()

	creds := models.Credentials{ClientID: "MY-CLIENT-ID-123", ClientSecret: "MY-SECRET-456"}
	svc := NewClientTokenService(mockAdapter, logger.NewClientLogger("test", path))

	gomock.InOrder(
		mockAdapter.EXPECT().RequestToken(ctx, creds).Return(models.TokenResponse{}, adapter.ErrUnauthorized),
		mockAdapter.EXPECT().RequestToken(ctx, creds).Return(models.TokenResponse{AccessToken: "MY-TOKEN-789", ExpiresIn: 60}, nil),
	)

	_, err := svc.EnsureValidToken(ctx, creds)
	require.Error(t, err)
	_, err = svc.EnsureValidToken(ctx, creds)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "exchanging client credentials")
	assert.NotContains(t, content, creds.ClientID)
	assert.NotContains(t, content, creds.ClientSecret)
	assert.NotContains(t, content, "MY-TOKEN-789")
}
