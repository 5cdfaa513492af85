package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bill represents a shared household bill for one billing period.
type Bill struct {
	amount float64
	period string
}

// NewBill validates amount and period and returns a Bill.
// The amount must be a finite, non-negative number and the period a
// non-empty label such as "May 2024".
func NewBill(amount float64, period string) (Bill, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Bill{}, fmt.Errorf("%w: amount must be a number", ErrInvalidInput)
	}
	if amount < 0 {
		return Bill{}, fmt.Errorf("%w: amount must be a non-negative number, got %v", ErrInvalidInput, amount)
	}
	period = strings.TrimSpace(period)
	if period == "" {
		return Bill{}, fmt.Errorf("%w: period must not be empty", ErrInvalidInput)
	}
	return Bill{amount: amount, period: period}, nil
}

// Amount is the monetary amount of the bill.
func (b Bill) Amount() float64 { return b.amount }

// Period is the label of the billing interval.
func (b Bill) Period() string { return b.period }

func (b Bill) String() string {
	return fmt.Sprintf("Bill(amount=%v, period=%q)", b.amount, b.period)
}

// ParseAmount parses a bill amount typed by a user.
//
// Only plain decimal numbers are accepted: an optional sign, digits and at
// most one decimal separator. A comma is read as the separator only when it
// is the only one and 1 or 2 digits follow it, so "12,5" is 12.5 while
// "1,000" and "1,234.56" are rejected rather than guessed at.
// Exponents, underscores, hex and "Inf"/"NaN" are rejected too.
//
// Examples:
//   ParseAmount("12.34") -> 12.34, nil
//   ParseAmount("12,34") -> 12.34, nil
//   ParseAmount("1,000") -> 0, ErrInvalidInput
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	invalid := fmt.Errorf("%w: amount must be a number, got %q", ErrInvalidInput, s)

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if strings.Count(digits, ",")+strings.Count(digits, ".") > 1 {
		return 0, invalid
	}
	intPart, fracPart := digits, ""
	if i := strings.IndexAny(digits, ",."); i >= 0 {
		intPart, fracPart = digits[:i], digits[i+1:]
		if digits[i] == ',' && (len(fracPart) < 1 || len(fracPart) > 2) {
			return 0, invalid
		}
	}
	if intPart == "" && fracPart == "" {
		return 0, invalid
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return 0, invalid
	}

	amount, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, invalid
	}
	return amount, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
