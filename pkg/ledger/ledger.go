package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/banking-system/pkg/store"
)

// Ledger owns the account collection and is the only mutation path for
// balances. Every operation runs inside a single mutex-guarded critical
// section, so a transfer's two legs are never observable independently.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*Account
	order    []string // account IDs in creation order
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// CreateAccount creates a new account with the given owner name and opening
// balance, and returns its ID. The owner name must be non-empty and the
// opening balance must not be negative.
func (l *Ledger) CreateAccount(owner string, opening decimal.Decimal) (string, error) {
	if strings.TrimSpace(owner) == "" {
		return "", ErrInvalidOwner
	}
	if opening.Sign() < 0 {
		return "", ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := uuid.NewString()
	l.accounts[id] = &Account{ID: id, OwnerName: owner, Balance: opening}
	l.order = append(l.order, id)
	return id, nil
}

// Deposit credits amount to the given account and returns a snapshot of the
// updated account.
func (l *Ledger) Deposit(id string, amount decimal.Decimal) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	if err := a.credit(amount); err != nil {
		return Account{}, err
	}
	return *a, nil
}

// Withdraw debits amount from the given account and returns a snapshot of
// the updated account. A failed withdrawal leaves the balance unchanged.
func (l *Ledger) Withdraw(id string, amount decimal.Decimal) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	if err := a.debit(amount); err != nil {
		return Account{}, err
	}
	return *a, nil
}

// Transfer moves amount from one account to another as a single atomic
// operation: either both legs apply or neither does.
func (l *Ledger) Transfer(fromID, toID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if fromID == toID {
		return ErrSameAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.accounts[fromID]
	if !ok {
		return fmt.Errorf("source account %s: %w", fromID, ErrAccountNotFound)
	}
	to, ok := l.accounts[toID]
	if !ok {
		return fmt.Errorf("destination account %s: %w", toID, ErrAccountNotFound)
	}

	if err := from.debit(amount); err != nil {
		return err
	}
	if err := to.credit(amount); err != nil {
		// amount was validated above so the credit cannot be rejected,
		// but restore the debited leg rather than leave a half transfer
		_ = from.credit(amount)
		return err
	}
	return nil
}

// Balance returns the current balance of the given account.
func (l *Ledger) Balance(id string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[id]
	if !ok {
		return decimal.Decimal{}, ErrAccountNotFound
	}
	return a.Balance, nil
}

// Accounts returns snapshots of all accounts in creation order.
func (l *Ledger) Accounts() []Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Account, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.accounts[id])
	}
	return out
}

// Snapshot exports all accounts as store records in creation order. The
// pass never mutates ledger state.
func (l *Ledger) Snapshot() []store.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]store.Record, 0, len(l.order))
	for _, id := range l.order {
		a := l.accounts[id]
		records = append(records, store.Record{
			ID:        a.ID,
			OwnerName: a.OwnerName,
			Balance:   a.Balance,
		})
	}
	return records
}

// Restore replaces the account collection with the given records. The new
// collection is validated and built completely before it is swapped in; on
// any error the previous state is left untouched.
func (l *Ledger) Restore(records []store.Record) error {
	accounts := make(map[string]*Account, len(records))
	order := make([]string, 0, len(records))

	for _, r := range records {
		if _, exists := accounts[r.ID]; exists {
			return fmt.Errorf("account %s: %w", r.ID, store.ErrDuplicateID)
		}
		if r.Balance.Sign() < 0 {
			return fmt.Errorf("account %s: negative balance: %w", r.ID, ErrInvalidAmount)
		}
		accounts[r.ID] = &Account{ID: r.ID, OwnerName: r.OwnerName, Balance: r.Balance}
		order = append(order, r.ID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts = accounts
	l.order = order
	return nil
}
