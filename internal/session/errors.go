package session

import "errors"

// Selection errors.
var (
	// ErrNoAccountSelected is returned when a command needs an account and
	// none is selected.
	ErrNoAccountSelected = errors.New("no account selected")
	// ErrAccountsNotListed is returned when selecting before any
	// successful account listing.
	ErrAccountsNotListed = errors.New("accounts have not been listed")
	// ErrSelectionOutOfRange is returned for an index outside the last
	// listing.
	ErrSelectionOutOfRange = errors.New("selection out of range")
)
