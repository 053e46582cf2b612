// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

const (
	promptIcon       = "💸"
	promptLocked     = "🔐"
	promptUnlocked   = "🔓"
	promptMagnifying = "🔍"
)

// prompt shows the selected account, whether a live token is held and,
// when private mode is off, a magnifying glass.
func (t *TUI) prompt() string {
	account := " "
	if selected, ok := t.session.SelectedAccount(); ok {
		account = " " + t.presenter.AccountLabel(selected, t.session.IsPrivate()) + " "
	}

	lock := promptUnlocked
	if t.session.IsLoggedIn() {
		lock = promptLocked
	}

	magnifier := ""
	if !t.session.IsPrivate() {
		magnifier = " " + promptMagnifying
	}

	return promptIcon + account + lock + magnifier + " > "
}
