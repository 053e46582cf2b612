// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

type helpEntry struct {
	usage string
	lines []string
}

func (t *TUI) helpEntries() []helpEntry {
	entries := []helpEntry{
		{
			usage: "login [--reset]",
			lines: []string{
				"Log in to Open Banking with a client id and secret.",
				"Reads INVESTEC_CLIENT_ID and INVESTEC_CLIENT_SECRET and prompts when they are missing.",
				"",
				"--reset",
				"         Forget the client id and secret and prompt for new ones.",
			},
		},
		{
			usage: "logout",
			lines: []string{"Drop the current access token. Credentials and selection are kept."},
		},
	}

	if t.opts.PrivacyCommand {
		entries = append(entries, helpEntry{
			usage: "private | pvt",
			lines: []string{
				"Toggle private mode.",
				"While private mode is on account numbers and amounts are masked.",
			},
		})
	}

	return append(entries,
		helpEntry{
			usage: "accounts | accts",
			lines: []string{"List accounts and optionally select one for later commands."},
		},
		helpEntry{
			usage: "transactions | txs",
			lines: []string{"List transactions for the selected account."},
		},
		helpEntry{
			usage: "balance | bal",
			lines: []string{"Show the balance of the selected account."},
		},
		helpEntry{
			usage: "help",
			lines: []string{"Show this help."},
		},
		helpEntry{
			usage: "quit",
			lines: []string{"Quit the application."},
		},
	)
}

func (t *TUI) printHelp() {
	var b strings.Builder
	for i, entry := range t.helpEntries() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %s\n", t.styles.command.Render(entry.usage))
		for _, line := range entry.lines {
			fmt.Fprintf(&b, "      | %s\n", line)
		}
	}
	fmt.Fprint(t.out, b.String())
}
