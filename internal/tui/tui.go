// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-open-banking/internal/app"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/internal/service"
	"github.com/MKhiriev/go-open-banking/internal/session"
	"github.com/MKhiriev/go-open-banking/internal/utils"
	"github.com/MKhiriev/go-open-banking/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Options tunes the REPL behaviour.
type Options struct {
	// PrivacyCommand enables the private/pvt toggle.
	PrivacyCommand bool
	// Currency prefixes transaction amounts.
	Currency string
	// MaskBalances hides balances while private mode is on.
	MaskBalances bool
}

type handler func(ctx context.Context, args []string) error

// TUI is the line-oriented banking REPL. It reads one command per line from
// in and writes everything the operator sees to out.
type TUI struct {
	session   *session.Session
	banking   service.ClientBankingService
	presenter *Presenter
	styles    styles
	opts      Options
	in        *bufio.Reader
	out       io.Writer
	logger    *logger.Logger
	commands  map[string]handler
}

func New(
	sess *session.Session,
	banking service.ClientBankingService,
	in io.Reader,
	out io.Writer,
	opts Options,
	log *logger.Logger,
) *TUI {
	renderer := lipgloss.NewRenderer(out)

	t := &TUI{
		session:   sess,
		banking:   banking,
		presenter: NewPresenter(renderer, opts.Currency, opts.MaskBalances),
		styles:    newStyles(renderer),
		opts:      opts,
		in:        bufio.NewReader(in),
		out:       out,
		logger:    log,
	}
	t.commands = t.commandTable()

	return t
}

func (t *TUI) commandTable() map[string]handler {
	commands := map[string]handler{
		"login":        t.loginCommand,
		"logout":       t.logoutCommand,
		"accounts":     t.accountsCommand,
		"accts":        t.accountsCommand,
		"transactions": t.transactionsCommand,
		"txs":          t.transactionsCommand,
		"balance":      t.balanceCommand,
		"bal":          t.balanceCommand,
		"help":         t.helpCommand,
		"quit":         t.quitCommand,
	}
	if t.opts.PrivacyCommand {
		commands["private"] = t.privacyCommand
		commands["pvt"] = t.privacyCommand
	}
	return commands
}

// Banner prints the start-up banner.
func (t *TUI) Banner(info models.AppBuildInfo) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.styles.title.Render(app.AppTitle))
	fmt.Fprintln(t.out, t.styles.help.Render("Version: "+info.String()))
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, app.MsgHelpHint)
	fmt.Fprintln(t.out)
}

// MainLoop prompts, reads and executes commands until quit or until the
// input is closed. Both end the loop without an error.
func (t *TUI) MainLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := t.readLine(t.prompt())
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				fmt.Fprintln(t.out)
				return nil
			}
			return err
		}

		err = t.Execute(ctx, line)
		switch {
		case errors.Is(err, ErrUserQuit):
			return nil
		case errors.Is(err, ErrInputClosed):
			fmt.Fprintln(t.out)
			return nil
		}
	}
}

// Execute runs a single command line. Command failures are printed and
// logged here; only ErrUserQuit and ErrInputClosed are returned, so the
// caller knows when to stop.
func (t *TUI) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name := fields[0]
	cmd, ok := t.commands[name]
	if !ok {
		fmt.Fprintf(t.out, app.MsgInvalidCommand+"\n", t.styles.err.Render(name))
		fmt.Fprintln(t.out)
		t.printHelp()
		return nil
	}

	commandID := utils.NewCommandID()
	log := t.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("command", name).Str("command_id", commandID)
	})
	ctx = utils.WithCommandID(log.WithContext(ctx), commandID)

	log.Debug().Strs("args", fields[1:]).Msg("executing command")

	err := cmd(ctx, fields[1:])
	if errors.Is(err, ErrUserQuit) || errors.Is(err, ErrInputClosed) {
		return err
	}
	if err != nil {
		log.Warn().Err(err).Msg("command failed")
		t.printError(humanizeError(err))
	}

	return nil
}

// readLine writes prompt and returns the next trimmed line. A final line
// without a newline is still returned; ErrInputClosed follows it.
func (t *TUI) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)

	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// ask reads an answer to message, formatted as "<message>: ".
func (t *TUI) ask(message string) (string, error) {
	return t.readLine(message + ": ")
}

func (t *TUI) printError(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(t.out, t.styles.err.Render(msg))
}
