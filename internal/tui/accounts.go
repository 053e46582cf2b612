// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-open-banking/internal/app"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/models"
)

func (t *TUI) accountsCommand(ctx context.Context, _ []string) error {
	return t.selectAccount(ctx)
}

// selectAccount lists the accounts and updates the selection: none for an
// empty listing, the only account for a single one, otherwise whatever the
// operator picks.
func (t *TUI) selectAccount(ctx context.Context) error {
	token, err := t.ensureLoggedIn(ctx)
	if err != nil {
		return err
	}

	accounts, err := t.banking.ListAccounts(ctx, token)
	if err != nil {
		return err
	}

	t.session.SetAccounts(accounts)
	fmt.Fprintln(t.out, t.presenter.Accounts(accounts, t.session.IsPrivate()))

	switch len(accounts) {
	case 0:
		t.session.ClearSelection()
		return nil
	case 1:
		return t.session.Select(0)
	}

	return t.promptSelection(ctx, len(accounts))
}

func (t *TUI) promptSelection(ctx context.Context, count int) error {
	last := count - 1
	log := logger.FromContextOr(ctx, t.logger)

	for {
		input, err := t.ask(fmt.Sprintf(app.MsgSelectAccount, last))
		if err != nil {
			return err
		}
		if input == "" {
			t.session.ClearSelection()
			return nil
		}

		index, err := strconv.Atoi(input)
		if err == nil {
			err = t.session.Select(index)
		}
		if err != nil {
			log.Debug().Err(fmt.Errorf("%w %q: %w", ErrInvalidSelection, input, err)).Msg("selection rejected")
			t.printError(fmt.Sprintf(app.MsgInvalidSelection, last))
			continue
		}

		return nil
	}
}

// requireAccount returns the selected account, running the selection flow
// first when nothing is selected yet.
func (t *TUI) requireAccount(ctx context.Context) (models.Account, error) {
	if account, ok := t.session.SelectedAccount(); ok {
		return account, nil
	}
	if err := t.selectAccount(ctx); err != nil {
		return models.Account{}, err
	}
	return t.session.RequireSelectedAccount()
}

func (t *TUI) transactionsCommand(ctx context.Context, _ []string) error {
	if _, err := t.ensureLoggedIn(ctx); err != nil {
		return err
	}

	account, err := t.requireAccount(ctx)
	if err != nil {
		return err
	}

	transactions, err := t.banking.ListTransactions(ctx, t.session.Token(), account.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, t.presenter.Transactions(transactions, t.session.IsPrivate()))
	return nil
}

func (t *TUI) balanceCommand(ctx context.Context, _ []string) error {
	if _, err := t.ensureLoggedIn(ctx); err != nil {
		return err
	}

	account, err := t.requireAccount(ctx)
	if err != nil {
		return err
	}

	balance, err := t.banking.GetBalance(ctx, t.session.Token(), account.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, t.presenter.Balance(balance, t.session.IsPrivate()))
	return nil
}
