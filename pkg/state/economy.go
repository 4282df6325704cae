package state

import (
	"errors"
	"time"
)

// Economy errors surfaced to callers as declined operations. The state
// is unchanged whenever one of these is returned.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// EconomyLedger manages per-user balances within a guild. Balances are
// never negative; operations that would make one negative are declined
// with ErrInsufficientFunds. A transfer debits and credits as a single
// step under the store lock, so the guild's total is conserved.
type EconomyLedger struct {
	store *Store
	now   func() time.Time
}

// NewEconomyLedger creates a ledger over the given store.
func NewEconomyLedger(store *Store) *EconomyLedger {
	return &EconomyLedger{store: store, now: time.Now}
}

// Balance returns a user's balance, zero for unknown users.
func (l *EconomyLedger) Balance(guildID, userID string) int64 {
	var bal int64
	l.store.View(func(d *Document) {
		if acc := d.Economy[guildID][userID]; acc != nil {
			bal = acc.Money
		}
	})
	return bal
}

// ClaimDaily credits amount to the user unless their previous claim was
// less than cooldown ago. It reports whether the claim was granted and
// the resulting balance; a declined claim changes nothing.
func (l *EconomyLedger) ClaimDaily(guildID, userID string, amount int64, cooldown time.Duration) (granted bool, balance int64, err error) {
	err = l.store.Update(func(d *Document) error {
		acc := ensureAccount(d, guildID, userID)
		now := l.now().Unix()
		if acc.LastDaily != 0 && now-acc.LastDaily < int64(cooldown.Seconds()) {
			balance = acc.Money
			return nil
		}
		acc.LastDaily = now
		acc.Money += amount
		granted = true
		balance = acc.Money
		return nil
	})
	return granted, balance, err
}

// Transfer moves amount from one user to another. It declines with
// ErrInvalidAmount for non-positive amounts and ErrInsufficientFunds
// when the sender cannot cover it; both sides are updated before the
// document is persisted, or neither is.
func (l *EconomyLedger) Transfer(guildID, fromID, toID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return l.store.Update(func(d *Document) error {
		from := ensureAccount(d, guildID, fromID)
		if from.Money < amount {
			return ErrInsufficientFunds
		}
		to := ensureAccount(d, guildID, toID)
		from.Money -= amount
		to.Money += amount
		return nil
	})
}

// Purchase debits price from the user. No inventory is tracked.
func (l *EconomyLedger) Purchase(guildID, userID string, price int64) error {
	if price <= 0 {
		return ErrInvalidAmount
	}
	return l.store.Update(func(d *Document) error {
		acc := ensureAccount(d, guildID, userID)
		if acc.Money < price {
			return ErrInsufficientFunds
		}
		acc.Money -= price
		return nil
	})
}

// ensureAccount returns the user's account, creating a zeroed one in
// the document when absent. Must run under the store lock.
func ensureAccount(d *Document, guildID, userID string) *EconomyAccount {
	guild, ok := d.Economy[guildID]
	if !ok {
		guild = make(map[string]*EconomyAccount)
		d.Economy[guildID] = guild
	}
	acc, ok := guild[userID]
	if !ok {
		acc = &EconomyAccount{}
		guild[userID] = acc
	}
	return acc
}
