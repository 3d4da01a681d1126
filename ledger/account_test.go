package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccountCredit(t *testing.T) {
	t.Parallel()

	a := newAccount(1)
	a.credit(dec("100.5"))

	assert.True(t, a.Available.Equal(dec("100.5")))
	assert.True(t, a.Held.Equal(decimal.Zero))
	assert.True(t, a.Total().Equal(dec("100.5")))
}

func TestAccountDebit(t *testing.T) {
	t.Parallel()

	a := newAccount(1)
	a.credit(dec("100"))
	a.debit(dec("50"))

	assert.True(t, a.Available.Equal(dec("50")))
	assert.True(t, a.Total().Equal(dec("50")))
}

func TestAccountHoldAndRelease(t *testing.T) {
	t.Parallel()

	a := newAccount(1)
	a.credit(dec("100"))

	a.hold(dec("100"))
	assert.True(t, a.Available.Equal(decimal.Zero))
	assert.True(t, a.Held.Equal(dec("100")))
	assert.True(t, a.Total().Equal(dec("100")), "hold must not change total")

	a.release(dec("100"))
	assert.True(t, a.Available.Equal(dec("100")))
	assert.True(t, a.Held.Equal(decimal.Zero))
	assert.True(t, a.Total().Equal(dec("100")), "release must not change total")
}

func TestAccountChargeback(t *testing.T) {
	t.Parallel()

	a := newAccount(1)
	a.credit(dec("100"))
	a.hold(dec("100"))

	a.chargeback(dec("100"))

	assert.True(t, a.Available.Equal(decimal.Zero))
	assert.True(t, a.Held.Equal(decimal.Zero))
	assert.True(t, a.Total().Equal(decimal.Zero), "chargeback removes funds from total")
	assert.True(t, a.Locked)
}

func TestAccountHoldCanDriveAvailableNegative(t *testing.T) {
	t.Parallel()

	// Withdraw first, then dispute the original deposit.
	a := newAccount(1)
	a.credit(dec("5"))
	a.debit(dec("2"))
	a.hold(dec("5"))

	assert.True(t, a.Available.Equal(dec("-2")))
	assert.True(t, a.Held.Equal(dec("5")))
	assert.True(t, a.Total().Equal(dec("3")))
}
