// Package tariff turns metered water volumes into money.
package tariff

import "github.com/shopspring/decimal"

// Per-cubic-meter rates.
var (
	ColdRate = decimal.RequireFromString("2.5")
	HotRate  = decimal.RequireFromString("4.5")
)

// Amount returns cold*ColdRate + hot*HotRate in whole cents.
func Amount(cold, hot float64) decimal.Decimal {
	return Cents(decimal.NewFromFloat(cold).Mul(ColdRate).
		Add(decimal.NewFromFloat(hot).Mul(HotRate)))
}

// Cents rounds d half away from zero to two decimal places.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders d with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatFloat renders a volume with exactly two decimal places.
func FormatFloat(f float64) string {
	return Format(decimal.NewFromFloat(f))
}
