package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// monetaryPrecision is the number of decimal places kept in all amounts.
const monetaryPrecision = 2

// Money is an exact decimal amount. All purse and bid arithmetic goes through
// this type; binary floats never enter the engine.
type Money struct {
	dec decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// FromInt64 builds an amount from a whole number of currency units.
func FromInt64(v int64) Money {
	return Money{dec: decimal.NewFromInt(v)}
}

// FromString parses a decimal amount, e.g. "1000000" or "2500000.50".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return Money{dec: d.Round(monetaryPrecision)}, nil
}

func (m Money) Add(o Money) Money { return Money{dec: m.dec.Add(o.dec)} }
func (m Money) Sub(o Money) Money { return Money{dec: m.dec.Sub(o.dec)} }

// Cmp returns -1, 0 or 1 comparing m against o.
func (m Money) Cmp(o Money) int { return m.dec.Cmp(o.dec) }

func (m Money) Equal(o Money) bool              { return m.dec.Equal(o.dec) }
func (m Money) GreaterThan(o Money) bool        { return m.dec.GreaterThan(o.dec) }
func (m Money) GreaterThanOrEqual(o Money) bool { return m.dec.GreaterThanOrEqual(o.dec) }
func (m Money) LessThan(o Money) bool           { return m.dec.LessThan(o.dec) }

func (m Money) IsZero() bool     { return m.dec.IsZero() }
func (m Money) IsNegative() bool { return m.dec.IsNegative() }

func (m Money) String() string { return m.dec.String() }

// MarshalJSON encodes the amount as a JSON string to preserve exactness.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.dec.MarshalJSON()
}

// UnmarshalJSON accepts either a JSON string or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("money: %w", err)
	}
	m.dec = d.Round(monetaryPrecision)
	return nil
}
