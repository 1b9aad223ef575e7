// Package types defines the shared data model of the pricing core.
package types

import (
	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

// CurrencyEGP is used when a price book names no currency
const CurrencyEGP Currency = "EGP"

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Money is an exact monetary amount.
// Per-100-pages rates, flat cover add-ons and manual deltas all use it, so
// every price in the core shares one unit: the price book's currency.
type Money struct {
	d decimal.Decimal
}

var (
	// Zero is the zero amount
	Zero = Money{}

	hundred = decimal.NewFromInt(100)
)

// NewMoney creates an amount from a whole number
func NewMoney(v int64) Money {
	return Money{d: decimal.NewFromInt(v)}
}

// MoneyFromDecimal wraps a decimal
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// ParseMoney parses a decimal string such as "12.50"
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d: d}, nil
}

// Decimal returns the underlying decimal
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Add returns m + o
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// MulInt returns m * n
func (m Money) MulInt(n int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(n))}
}

// PerHundred scales a per-100-pages rate to the given page count.
// The division is exact; no intermediate rounding happens here.
func (m Money) PerHundred(pages int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(pages)).Div(hundred)}
}

// CeilTo rounds m up to the next multiple of step.
// A step that is zero or negative is treated as 1.
func (m Money) CeilTo(step Money) Money {
	if !step.d.IsPositive() {
		step = NewMoney(1)
	}
	q, r := m.d.QuoRem(step.d, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}
	return Money{d: q.Mul(step.d)}
}

// IsZero reports whether m == 0
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsPositive reports whether m > 0
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// Equal reports whether m and o are the same amount
func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// Float64 returns the nearest float, for display and validation only
func (m Money) Float64() float64 {
	return m.d.InexactFloat64()
}

// String returns the canonical decimal representation
func (m Money) String() string {
	return m.d.String()
}

// StringFixed returns the amount with a fixed number of decimal places
func (m Money) StringFixed(places int32) string {
	return m.d.StringFixed(places)
}

// MarshalJSON writes the amount as a bare JSON number
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.String()), nil
}

// UnmarshalJSON accepts both numbers and quoted decimal strings
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.d.UnmarshalJSON(data)
}

// Sides is a pair of amounts for one-sided and double-sided printing
type Sides struct {
	OneFace  Money `json:"one_face_price"`
	TwoFaces Money `json:"two_faces_price"`
}

// NewSides creates a pair from whole numbers
func NewSides(oneFace, twoFaces int64) Sides {
	return Sides{OneFace: NewMoney(oneFace), TwoFaces: NewMoney(twoFaces)}
}

// Add returns the side-wise sum
func (s Sides) Add(o Sides) Sides {
	return Sides{OneFace: s.OneFace.Add(o.OneFace), TwoFaces: s.TwoFaces.Add(o.TwoFaces)}
}

// AddFlat adds the same amount to both sides
func (s Sides) AddFlat(m Money) Sides {
	return Sides{OneFace: s.OneFace.Add(m), TwoFaces: s.TwoFaces.Add(m)}
}

// MulInt multiplies both sides by n
func (s Sides) MulInt(n int64) Sides {
	return Sides{OneFace: s.OneFace.MulInt(n), TwoFaces: s.TwoFaces.MulInt(n)}
}

// CeilTo rounds both sides up to a multiple of step
func (s Sides) CeilTo(step Money) Sides {
	return Sides{OneFace: s.OneFace.CeilTo(step), TwoFaces: s.TwoFaces.CeilTo(step)}
}

// Equal reports whether both sides match
func (s Sides) Equal(o Sides) bool {
	return s.OneFace.Equal(o.OneFace) && s.TwoFaces.Equal(o.TwoFaces)
}

// IsZero reports whether both sides are zero
func (s Sides) IsZero() bool {
	return s.OneFace.IsZero() && s.TwoFaces.IsZero()
}

// Side picks one of the two amounts
func (s Sides) Side(twoFaces bool) Money {
	if twoFaces {
		return s.TwoFaces
	}
	return s.OneFace
}
