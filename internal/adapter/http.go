// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-open-banking/internal/config"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/internal/utils"
	"github.com/MKhiriev/go-open-banking/models"
	"github.com/go-resty/resty/v2"
)

// API paths relative to the base URL.
const (
	tokenPath        = "/identity/v2/oauth2/token"
	accountsPath     = "/za/pb/v1/accounts"
	transactionsPath = "/za/pb/v1/accounts/{accountId}/transactions"
	balancePath      = "/za/pb/v1/accounts/{accountId}/balance"

	requestIDHeader = "X-Request-Id"
)

type httpBankingAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBankingAdapter constructs the resty implementation of
// [BankingAdapter]. It normalises and validates adapterCfg.BaseURL and
// configures the request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBankingAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BankingAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpBankingAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RequestToken implements [BankingAdapter]. It POSTs the form
// grant_type=client_credentials&scope=accounts to the token endpoint with
// HTTP Basic credentials.
func (h *httpBankingAdapter) RequestToken(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	resp, err := h.request(ctx).
		SetBasicAuth(creds.ClientID, creds.ClientSecret).
		SetFormData(map[string]string{
			"grant_type": "client_credentials",
			"scope":      "accounts",
		}).
		Post(tokenPath)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	h.logResponse(ctx, resp)
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}

	return token, nil
}

// Accounts implements [BankingAdapter]. It GETs /za/pb/v1/accounts.
func (h *httpBankingAdapter) Accounts(ctx context.Context, token string) ([]models.Account, error) {
	var body models.AccountsResponse
	if err := h.get(ctx, token, accountsPath, "", &body); err != nil {
		return nil, fmt.Errorf("accounts: %w", err)
	}

	return body.Data.Accounts, nil
}

// Transactions implements [BankingAdapter]. It GETs
// /za/pb/v1/accounts/{accountId}/transactions.
func (h *httpBankingAdapter) Transactions(ctx context.Context, token, accountID string) ([]models.Transaction, error) {
	if accountID == "" {
		return nil, ErrEmptyAccountID
	}

	var body models.TransactionsResponse
	if err := h.get(ctx, token, transactionsPath, accountID, &body); err != nil {
		return nil, fmt.Errorf("transactions: %w", err)
	}

	return body.Data.Transactions, nil
}

// Balance implements [BankingAdapter]. It GETs
// /za/pb/v1/accounts/{accountId}/balance.
func (h *httpBankingAdapter) Balance(ctx context.Context, token, accountID string) (models.Balance, error) {
	if accountID == "" {
		return models.Balance{}, ErrEmptyAccountID
	}

	var body models.BalanceResponse
	if err := h.get(ctx, token, balancePath, accountID, &body); err != nil {
		return models.Balance{}, fmt.Errorf("balance: %w", err)
	}

	return body.Data, nil
}

func (h *httpBankingAdapter) get(ctx context.Context, token, path, accountID string, out any) error {
	req := h.authedRequest(ctx, token)
	if accountID != "" {
		req.SetPathParam("accountId", accountID)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	h.logResponse(ctx, resp)
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpBankingAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if commandID, ok := utils.GetCommandIDFromContext(ctx); ok {
		req.SetHeader(requestIDHeader, commandID)
	}
	return req
}

func (h *httpBankingAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.request(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpBankingAdapter) logResponse(ctx context.Context, resp *resty.Response) {
	logger.FromContextOr(ctx, h.logger).Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("banking api call")
}
