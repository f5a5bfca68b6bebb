package ledger

import "errors"

// Domain errors returned by Ledger operations. Callers distinguish them
// with errors.Is; lower layers may wrap them with additional context.
var (
	// ErrInvalidAmount is returned when an amount is not strictly positive,
	// or an opening balance is negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidOwner is returned when an account owner name is empty.
	ErrInvalidOwner = errors.New("owner name must not be empty")

	// ErrAccountNotFound is returned when no account exists for the given ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount is returned when a transfer names the same account on
	// both sides.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrInsufficientFunds is returned when a debit would overdraw the
	// account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
