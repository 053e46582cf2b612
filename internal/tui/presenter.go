// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-open-banking/internal/app"
	"github.com/MKhiriev/go-open-banking/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// Presenter renders banking data as text. Privacy only changes what is
// printed; the models passed in are never modified.
type Presenter struct {
	styles       styles
	currency     string
	maskBalances bool
}

// NewPresenter creates a presenter whose output is styled for r.
func NewPresenter(r *lipgloss.Renderer, currency string, maskBalances bool) *Presenter {
	return &Presenter{
		styles:       newStyles(r),
		currency:     currency,
		maskBalances: maskBalances,
	}
}

// Accounts renders the account listing with zero-based indexes.
func (p *Presenter) Accounts(accounts []models.Account, private bool) string {
	t := p.newTable("", "Account Number", "Account Name", "Product")
	for i, account := range accounts {
		t.Row(strconv.Itoa(i), accountNumber(account, private), account.Name, account.ProductName)
	}
	return t.String()
}

// Transactions renders one row per transaction. The Date column is the
// posting date; the value date has its own column.
func (p *Presenter) Transactions(transactions []models.Transaction, private bool) string {
	t := p.newTable("Date", "Description", "Amount", "Status", "Card Number", "Value Date")
	for _, tx := range transactions {
		t.Row(
			tx.PostingDate,
			tx.Description,
			FormatAmount(tx, p.currency, private),
			tx.Status,
			tx.CardNumber,
			tx.ValueDate,
		)
	}
	return t.String()
}

// Balance renders the current and available balance on two lines.
func (p *Presenter) Balance(balance models.Balance, private bool) string {
	currency := balance.Currency
	if currency == "" {
		currency = p.currency
	}

	mask := private && p.maskBalances
	return strings.Join([]string{
		fmt.Sprintf(app.MsgCurrentBalance, currency, p.balanceAmount(balance.CurrentBalance, mask)),
		fmt.Sprintf(app.MsgAvailableBalance, currency, p.balanceAmount(balance.AvailableBalance, mask)),
	}, "\n")
}

// AccountLabel is the short account description shown in the prompt.
func (p *Presenter) AccountLabel(account models.Account, private bool) string {
	return p.styles.accent.Render(accountNumber(account, private)) +
		"/" + account.Name +
		"/" + p.styles.accent.Render(account.ProductName)
}

func (p *Presenter) balanceAmount(amount decimal.Decimal, mask bool) string {
	if mask {
		return amountPlaceholder
	}
	return amount.StringFixed(2)
}

func (p *Presenter) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.styles.header
			}
			return p.styles.cell
		})
}
