// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// banking REPL.
//
// All Msg* constants are human-readable strings printed to the operator.
// Keeping them in one place ensures consistent wording across commands.
package app

const (
	// AppTitle is printed at the top of the banner.
	AppTitle = "Investec Open Banking REPL"

	// MsgHelpHint closes the banner.
	MsgHelpHint = "Type 'help' for a list of available commands"

	// MsgLoggingIn is printed before a token exchange.
	MsgLoggingIn = "Logging in..."

	// MsgLoginSucceeded is printed after a successful login.
	MsgLoginSucceeded = "Successfully logged in"

	// MsgLoginFailed is printed when the token exchange fails or the
	// credentials are incomplete.
	MsgLoginFailed = "Error logging in"

	// MsgNoAccountSelected is printed when a command needs an account and
	// the selection flow ended without one.
	MsgNoAccountSelected = "No account selected"

	// MsgInvalidCommand is printed for an unknown command. It takes the
	// command name.
	MsgInvalidCommand = "%s is not a valid command"

	// MsgSelectAccount prompts for an account index. It takes the highest
	// valid index.
	MsgSelectAccount = "Select account (0 - %d) or ENTER to cancel"

	// MsgInvalidSelection is printed for an unusable index. It takes the
	// highest valid index.
	MsgInvalidSelection = "Invalid selection. Please provide a number between 0 and %d"

	// MsgEnterClientID prompts for the client id.
	MsgEnterClientID = "Enter Client ID 🔑 "

	// MsgEnterClientSecret prompts for the client secret.
	MsgEnterClientSecret = "Enter Client Secret 🔑 "

	// MsgCurrentBalance labels the current balance. It takes the currency
	// and the amount.
	MsgCurrentBalance = "Current Balance: %s %s"

	// MsgAvailableBalance labels the available balance. It takes the
	// currency and the amount.
	MsgAvailableBalance = "Available Balance: %s %s"
)
