package model

import (
	"fmt"
	"strings"
)

// Money is an amount in cents. Display formatting only; arithmetic on
// monetary values belongs to the backend.
type Money int64

// String renders the amount as 1,234.56 with thousands separators.
func (m Money) String() string {
	negative := m < 0
	if negative {
		m = -m
	}

	units := int64(m) / 100
	cents := int64(m) % 100

	digits := fmt.Sprintf("%d", units)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	fmt.Fprintf(&b, ".%02d", cents)
	return b.String()
}

// WithCurrency prefixes the formatted amount with a currency symbol.
func (m Money) WithCurrency(symbol string) string {
	if m < 0 {
		return "-" + symbol + (-m).String()
	}
	return symbol + m.String()
}
