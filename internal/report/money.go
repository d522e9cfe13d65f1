package report

import "github.com/shopspring/decimal"

const moneyPlaces = 2

// Money is an amount written as a JSON number with exactly two fractional digits
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func optionalMoney(d *decimal.Decimal) *Money {
	if d == nil {
		return nil
	}
	m := NewMoney(*d)
	return &m
}

// MarshalJSON writes the amount unquoted, e.g. 4.50
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(moneyPlaces)), nil
}

// Text returns the amount with two fractional digits
func (m Money) Text() string {
	return m.StringFixed(moneyPlaces)
}
