package ledger

import "github.com/shopspring/decimal"

// Account is the per-client balance state. Available may go negative
// (withdraw, then dispute an earlier deposit); Held never does. Locked
// is one-way: once a chargeback lands the account stays frozen.
type Account struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

func newAccount(client ClientID) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total is the full balance, available plus held.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

func (a *Account) credit(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount)
}

func (a *Account) debit(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
}

// hold moves amount from available to held. Total is unchanged.
func (a *Account) hold(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// release moves amount from held back to available. Total is unchanged.
func (a *Account) release(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// chargeback removes amount from held entirely and freezes the account.
func (a *Account) chargeback(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}
