// Package staking keeps the free and staked balances of accounts and moves
// funds between them.
//
// An account implicitly exists with zero balances until it is funded with
// `SetBalance`; `Stake` and `Unstake` are pure transfers between the two
// balances of one account, so `free + staked` only changes via `SetBalance`.
package staking

import (
	"cmp"
	"slices"
	"sync"

	"boscoin.io/stakegov/lib/common"
	"boscoin.io/stakegov/lib/errors"
)

type Ledger[A cmp.Ordered, B common.Balance[B]] struct {
	sync.RWMutex

	free   map[A]B
	staked map[A]B
}

func NewLedger[A cmp.Ordered, B common.Balance[B]]() *Ledger[A, B] {
	return &Ledger[A, B]{
		free:   map[A]B{},
		staked: map[A]B{},
	}
}

// SetBalance overwrites the free balance of `who`; the previous free balance
// is discarded, the staked balance is untouched.
func (l *Ledger[A, B]) SetBalance(who A, amount B) {
	l.Lock()
	defer l.Unlock()

	l.free[who] = amount
}

// Stake moves `amount` from the free balance to the staked balance.
//
// It fails with `errors.InsufficientFunds` when the free balance is lower than
// `amount` and with `errors.Overflow` when the staked balance can not hold it.
// On failure neither balance changes.
func (l *Ledger[A, B]) Stake(who A, amount B) error {
	l.Lock()
	defer l.Unlock()

	free, staked, err := transfer(l.free[who], l.staked[who], amount)
	if err != nil {
		return err
	}

	l.free[who] = free
	l.staked[who] = staked

	return nil
}

// Unstake moves `amount` from the staked balance back to the free balance.
// Errors are the same as `Stake`, with the roles of the balances swapped.
func (l *Ledger[A, B]) Unstake(who A, amount B) error {
	l.Lock()
	defer l.Unlock()

	staked, free, err := transfer(l.staked[who], l.free[who], amount)
	if err != nil {
		return err
	}

	l.free[who] = free
	l.staked[who] = staked

	return nil
}

func (l *Ledger[A, B]) FreeBalance(who A) B {
	l.RLock()
	defer l.RUnlock()

	return l.free[who]
}

func (l *Ledger[A, B]) StakedBalance(who A) B {
	l.RLock()
	defer l.RUnlock()

	return l.staked[who]
}

// Accounts returns every account which has a free or staked entry, sorted.
func (l *Ledger[A, B]) Accounts() []A {
	l.RLock()
	defer l.RUnlock()

	accounts := make([]A, 0, len(l.free))
	for who := range l.free {
		accounts = append(accounts, who)
	}
	for who := range l.staked {
		if _, found := l.free[who]; !found {
			accounts = append(accounts, who)
		}
	}
	slices.Sort(accounts)

	return accounts
}

// transfer computes both sides of a move from `from` to `to` without touching
// any state.
func transfer[B common.Balance[B]](from, to, amount B) (B, B, error) {
	var zero B

	newFrom, err := from.Sub(amount)
	if err != nil {
		return zero, zero, errors.InsufficientFunds
	}

	newTo, err := to.Add(amount)
	if err != nil {
		return zero, zero, errors.Overflow
	}

	return newFrom, newTo, nil
}
