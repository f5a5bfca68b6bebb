// Package ledger implements the in-memory account ledger: account creation,
// deposits, withdrawals, transfers, balance queries and snapshot
// export/restore for persistence.
package ledger

import "github.com/shopspring/decimal"

// Account represents a single customer account.
// ID and OwnerName are immutable after creation; Balance changes only
// through Ledger operations and never goes negative.
type Account struct {
	ID        string
	OwnerName string
	Balance   decimal.Decimal
}

// credit adds amount to the balance. Amount must be strictly positive.
func (a *Account) credit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// debit removes amount from the balance. Amount must be strictly positive
// and must not exceed the current balance.
func (a *Account) debit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}
