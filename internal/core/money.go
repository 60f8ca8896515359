package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseMoney reads a user-entered amount like "12.50" or "12,50" into
// integer cents. Amounts are magnitudes: signed input is rejected, the
// transaction type carries direction. More than two decimals are rounded
// half-up on the third, so "0.005" is the smallest accepted value.
func ParseMoney(s string) (Money, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if norm == "" || norm[0] == '+' || norm[0] == '-' {
		return Money{}, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(norm, ".")
	if strings.Contains(frac, ".") {
		return Money{}, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if !allDigits(whole) || !allDigits(frac) {
		return Money{}, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > (math.MaxInt64-99)/100 {
		return Money{}, ErrInvalidAmount
	}

	cents := units * 100
	switch {
	case len(frac) == 1:
		cents += int64(frac[0]-'0') * 10
	case len(frac) >= 2:
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		if len(frac) > 2 && frac[2] >= '5' {
			cents++
		}
	}
	if cents == 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// allDigits accepts only ASCII digits; the empty string passes, letting
// inputs like "12." read as a whole amount.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String formats the amount as a plain decimal, e.g. "12.30".
func (m Money) String() string {
	neg := m.Cents < 0
	c := m.Cents
	if neg {
		c = -c
	}
	s := fmt.Sprintf("%d.%02d", c/100, c%100)
	if neg {
		return "-" + s
	}
	return s
}
