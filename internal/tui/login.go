// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-open-banking/internal/app"
	"github.com/MKhiriev/go-open-banking/models"
)

const flagReset = "--reset"

func (t *TUI) loginCommand(ctx context.Context, args []string) error {
	reset := len(args) > 0 && args[0] == flagReset
	return t.login(ctx, reset)
}

func (t *TUI) logoutCommand(_ context.Context, _ []string) error {
	t.session.Logout()
	return nil
}

// login prompts for credentials when asked to or when none are known, then
// exchanges them for a token.
func (t *TUI) login(ctx context.Context, reset bool) error {
	if reset || !t.session.HasCredentials() {
		creds, err := t.promptCredentials()
		if err != nil {
			return err
		}
		t.session.SetCredentials(creds)
	}

	if !t.session.IsLoggedIn() {
		fmt.Fprintln(t.out, app.MsgLoggingIn)
	}

	if _, err := t.session.Login(ctx); err != nil {
		return err
	}

	fmt.Fprintln(t.out, t.styles.accent.Render(app.MsgLoginSucceeded))
	return nil
}

// ensureLoggedIn makes at most one implicit login attempt and returns the
// token to authorize the next request with.
func (t *TUI) ensureLoggedIn(ctx context.Context) (models.Token, error) {
	if t.session.IsLoggedIn() {
		return t.session.Token(), nil
	}
	if err := t.login(ctx, false); err != nil {
		return models.Token{}, err
	}
	return t.session.Token(), nil
}

func (t *TUI) promptCredentials() (models.Credentials, error) {
	id, err := t.ask(app.MsgEnterClientID)
	if err != nil {
		return models.Credentials{}, err
	}
	secret, err := t.ask(app.MsgEnterClientSecret)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{ClientID: id, ClientSecret: secret}, nil
}
