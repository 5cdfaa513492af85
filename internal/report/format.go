package report

import "github.com/shopspring/decimal"

// FormatShare formats a share for the PDF report, rounded to one decimal.
func FormatShare(amount float64) string { return decimal.NewFromFloat(amount).StringFixed(1) }

// FormatMoney formats an amount with two decimals.
func FormatMoney(amount float64) string { return decimal.NewFromFloat(amount).StringFixed(2) }
