package escrow

import (
	"fmt"
	"sync"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/money"
)

// PurseState is the externally visible escrow position of a bidder.
type PurseState struct {
	Available money.Money `json:"available"`
	Locked    money.Money `json:"locked"`
}

// Ledger tracks each bidder's purse and the funds locked against open bids.
// Lock, Unlock, Transfer and Credit are the only mutators of purse state; the
// invariant available + locked == purse holds at all times.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

type account struct {
	purse  money.Money            // funds not yet permanently spent
	locked map[string]money.Money // itemID -> amount held against an open bid
}

// NewLedger creates an empty escrow ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*account)}
}

// Register opens an account with the given purse. Registering an existing
// bidder again is a no-op.
func (l *Ledger) Register(bidderID string, purse money.Money) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[bidderID]; ok {
		return
	}
	l.accounts[bidderID] = &account{
		purse:  purse,
		locked: make(map[string]money.Money),
	}
}

// Lock reserves amount against an open bid on item. When the bidder already
// holds a lock for the same item (raising their own bid), only the delta is
// charged against the available purse.
func (l *Ledger) Lock(bidderID, itemID string, amount money.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[bidderID]
	if !ok {
		return fmt.Errorf("escrow: lock for %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}

	delta := amount.Sub(acct.locked[itemID])
	if delta.GreaterThan(acct.available()) {
		return fmt.Errorf("escrow: lock %s on item %s for %s: %w",
			amount, itemID, bidderID, auctionerrors.ErrInsufficientFunds)
	}

	acct.locked[itemID] = amount
	return nil
}

// Unlock releases whatever is locked for the bidder/item pair back to the
// available purse and returns the released amount. Unlocking an absent pair
// is a no-op returning zero.
func (l *Ledger) Unlock(bidderID, itemID string) money.Money {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[bidderID]
	if !ok {
		return money.Zero()
	}

	released, ok := acct.locked[itemID]
	if !ok {
		return money.Zero()
	}
	delete(acct.locked, itemID)
	return released
}

// Transfer permanently debits amount from the bidder at settlement: the lock
// for the item is cleared and the purse reduced by the winning amount. The
// bidder's available-plus-locked funds must cover it.
func (l *Ledger) Transfer(bidderID, itemID string, amount money.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[bidderID]
	if !ok {
		return fmt.Errorf("escrow: transfer for %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}

	coverage := acct.available().Add(acct.locked[itemID])
	if amount.GreaterThan(coverage) {
		return fmt.Errorf("escrow: transfer %s on item %s for %s: %w",
			amount, itemID, bidderID, auctionerrors.ErrInsufficientFunds)
	}

	delete(acct.locked, itemID)
	acct.purse = acct.purse.Sub(amount)
	return nil
}

// Credit adds amount back to the bidder's purse; used by the Release
// compensating transaction.
func (l *Ledger) Credit(bidderID string, amount money.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[bidderID]
	if !ok {
		return fmt.Errorf("escrow: credit for %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}
	acct.purse = acct.purse.Add(amount)
	return nil
}

// LockedOn returns the amount currently locked for the bidder/item pair.
func (l *Ledger) LockedOn(bidderID, itemID string) money.Money {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acct, ok := l.accounts[bidderID]
	if !ok {
		return money.Zero()
	}
	return acct.locked[itemID]
}

// LockCount returns how many distinct items the bidder holds locks on.
func (l *Ledger) LockCount(bidderID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acct, ok := l.accounts[bidderID]
	if !ok {
		return 0
	}
	return len(acct.locked)
}

// State returns the bidder's available and locked totals.
func (l *Ledger) State(bidderID string) (PurseState, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acct, ok := l.accounts[bidderID]
	if !ok {
		return PurseState{}, fmt.Errorf("escrow: state for %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}
	return PurseState{
		Available: acct.available(),
		Locked:    acct.lockedTotal(),
	}, nil
}

func (a *account) available() money.Money {
	return a.purse.Sub(a.lockedTotal())
}

func (a *account) lockedTotal() money.Money {
	total := money.Zero()
	for _, amt := range a.locked {
		total = total.Add(amt)
	}
	return total
}
