// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakebank provides an in-process stand-in for the banking Open API,
// routed with chi and served by httptest. It is used by adapter and
// end-to-end client tests.
package fakebank

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/models"
	"github.com/go-chi/chi/v5"
)

// Options configures the fake API.
type Options struct {
	ClientID     string
	ClientSecret string
	// Token is issued on every successful exchange.
	Token string
	// ExpiresIn is the issued token lifetime in seconds.
	ExpiresIn int64

	Accounts     []models.Account
	Transactions map[string][]models.Transaction
	Balances     map[string]models.Balance

	// Logger receives one line per request. Nil discards them.
	Logger *logger.Logger
}

// Server is a running fake API. Close it when done.
type Server struct {
	*httptest.Server

	opts Options

	mu            sync.Mutex
	tokenRequests int
	dataRequests  int
	failData      bool
	lastRequestID string
}

// New starts a fake API server configured by opts.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &Server{opts: opts}

	r := chi.NewRouter()
	r.Use(s.withRequestID, s.withLogging)
	r.Post("/identity/v2/oauth2/token", s.token)
	r.Route("/za/pb/v1/accounts", func(r chi.Router) {
		r.Use(s.requireBearer)
		r.Get("/", s.accounts)
		r.Get("/{accountId}/transactions", s.transactions)
		r.Get("/{accountId}/balance", s.balance)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// TokenRequests returns the number of token exchanges received.
func (s *Server) TokenRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenRequests
}

// DataRequests returns the number of authorized data requests received.
func (s *Server) DataRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataRequests
}

// LastRequestID returns the X-Request-Id header of the latest request.
func (s *Server) LastRequestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequestID
}

// FailData makes every data endpoint answer 500 while fail is true.
func (s *Server) FailData(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failData = fail
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.tokenRequests++
	s.mu.Unlock()

	id, secret, ok := r.BasicAuth()
	if !ok || id != s.opts.ClientID || secret != s.opts.ClientSecret {
		http.Error(w, "invalid_client", http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil ||
		r.PostForm.Get("grant_type") != "client_credentials" ||
		r.PostForm.Get("scope") != "accounts" {
		http.Error(w, "invalid_request", http.StatusBadRequest)
		return
	}

	writeJSON(w, models.TokenResponse{
		AccessToken: s.opts.Token,
		TokenType:   "Bearer",
		ExpiresIn:   s.opts.ExpiresIn,
		Scope:       "accounts",
	})
}

func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.dataRequests++
		failing := s.failData
		s.mu.Unlock()

		if strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") != s.opts.Token || s.opts.Token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if failing {
			http.Error(w, "upstream failure", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) accounts(w http.ResponseWriter, r *http.Request) {
	var body models.AccountsResponse
	body.Data.Accounts = s.opts.Accounts
	body.Links.Self = r.URL.String()
	body.Meta.TotalPages = 1
	writeJSON(w, body)
}

func (s *Server) transactions(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if !s.knownAccount(accountID) {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}

	var body models.TransactionsResponse
	body.Data.Transactions = s.opts.Transactions[accountID]
	body.Links.Self = r.URL.String()
	body.Meta.TotalPages = 1
	writeJSON(w, body)
}

func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	balance, ok := s.opts.Balances[accountID]
	if !ok {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}

	writeJSON(w, models.BalanceResponse{
		Data:  balance,
		Links: models.Links{Self: r.URL.String()},
		Meta:  models.Meta{TotalPages: 1},
	})
}

func (s *Server) knownAccount(accountID string) bool {
	for _, a := range s.opts.Accounts {
		if a.ID == accountID {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
