package kernel

import (
	"github.com/shopspring/decimal"
)

// Money accumulates prices exactly. Prices enter and leave the domain as float64;
// sums and means go through decimal so that equal spends compare equal.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the additive identity.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// MoneyFromFloat converts a validated price.
func MoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mean divides the sum by n. A non-positive n yields zero instead of failing.
func (m Money) Mean(n int) Money {
	if n <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(n)))}
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the nearest float64.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
