package domain

import "math"

type ID int64

func ValidateID(id ID) bool {
	return id > 0
}

// Amount is a monetary value in cents. Keeping money integral means a
// sale total always equals the sum of its line subtotals with no float
// drift; conversion to the stored REAL representation happens at the
// repository boundary.
type Amount int64

func NewAmountFromCents(cents int64) Amount {
	return Amount(cents)
}

// NewAmountFromFloat converts a currency value such as 10.50 to cents,
// rounding half away from zero.
func NewAmountFromFloat(value float64) Amount {
	return Amount(math.Round(value * 100))
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) Float64() float64 {
	return float64(a) / 100
}

func (a Amount) IsNegative() bool {
	return a < 0
}
