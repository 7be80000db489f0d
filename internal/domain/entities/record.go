package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Record is anything stored as an element of a collection array.
type Record interface {
	RecordID() string
}

// RoundMoney rounds to cents and converts back to the float64 used in the
// stored JSON records.
func RoundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// OnlyDigits strips every non-digit rune (masks such as 000.000.000-00).
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
