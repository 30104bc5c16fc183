package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// moneyTotal sums amounts in decimal so long columns of fees do not drift. Non-finite inputs
// bypass the decimal sum and still poison the result the way float addition would.
type moneyTotal struct {
	sum       decimal.Decimal
	nonFinite float64
}

func (m *moneyTotal) add(amount float64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		m.nonFinite += amount
		return
	}
	m.sum = m.sum.Add(decimal.NewFromFloat(amount))
}

func (m *moneyTotal) value() float64 {
	return m.sum.InexactFloat64() + m.nonFinite
}
