// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "context"

func (t *TUI) privacyCommand(_ context.Context, _ []string) error {
	t.session.TogglePrivacy()
	return nil
}

func (t *TUI) helpCommand(_ context.Context, _ []string) error {
	t.printHelp()
	return nil
}

func (t *TUI) quitCommand(_ context.Context, _ []string) error {
	return ErrUserQuit
}
