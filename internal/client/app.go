// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-open-banking/internal/adapter"
	"github.com/MKhiriev/go-open-banking/internal/config"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/internal/service"
	"github.com/MKhiriev/go-open-banking/internal/session"
	"github.com/MKhiriev/go-open-banking/internal/tui"
	"github.com/MKhiriev/go-open-banking/models"
)

var _ Client = (*App)(nil)

// App is the banking REPL process: one session, one terminal.
type App struct {
	ui     *tui.TUI
	info   models.AppBuildInfo
	logger *logger.Logger
}

// NewApp wires the adapter, services, session and REPL described by cfg.
// The REPL reads commands from in and writes to out.
func NewApp(cfg *config.ClientConfig, info models.AppBuildInfo, in io.Reader, out io.Writer, log *logger.Logger) (*App, error) {
	bankingAdapter, err := adapter.NewHTTPBankingAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create banking adapter: %w", err)
	}

	services := service.NewClientServices(bankingAdapter, log)
	sess := session.New(cfg.Credentials, services.TokenService, cfg.App.StartPrivate)

	ui := tui.New(sess, services.BankingService, in, out, tui.Options{
		PrivacyCommand: cfg.App.PrivacyCommand,
		Currency:       cfg.App.Currency,
		MaskBalances:   cfg.App.MaskBalances,
	}, log)

	return &App{ui: ui, info: info, logger: log}, nil
}

// Run prints the banner and blocks in the REPL until quit or end of input.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("version", a.info.BuildVersion()).Msg("banking REPL started")

	a.ui.Banner(a.info)
	if err := a.ui.MainLoop(ctx); err != nil {
		a.logger.Err(err).Msg("banking REPL stopped")
		return err
	}

	a.logger.Info().Msg("banking REPL stopped")
	return nil
}
