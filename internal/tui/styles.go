// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
)

type styles struct {
	title   lipgloss.Style
	command lipgloss.Style
	accent  lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

// newStyles binds every style to r so that colour is only emitted when the
// output is a terminal.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorYellow),
		command: r.NewStyle().Foreground(colorYellow),
		accent:  r.NewStyle().Foreground(colorGreen),
		help:    r.NewStyle().Faint(true),
		err:     r.NewStyle().Foreground(colorRed),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
	}
}
