// Package currencyutils provides amount parsing and formatting helpers.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on parsed amounts.
const (
	maxAmountLength   = 32
	maxAmountExponent = 15
)

var (
	currencyMarkers = regexp.MustCompile(`^(?:[€$£¥₹]|[A-Z]{3})\s*`)
	plainNumber     = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)
)

// ParseAmount parses a plain numeric string such as "100", " 45.50 " or
// "1e3". Empty input, anything that is not a number, inputs longer than 32
// characters and exponents beyond ±15 are errors.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if len(s) > maxAmountLength {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': too many digits", amountStr)
	}
	if !plainNumber.MatchString(s) {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': not a number", amountStr)
	}
	s = strings.TrimSuffix(s, ".")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': out of range", amountStr)
	}
	return amount, nil
}

// ParseBudget parses a budget value typed by a user. It accepts a leading
// currency symbol or three-letter code, apostrophe thousand separators and a
// decimal comma ("₹1'500", "INR 1500,50"). Negative budgets are rejected.
func ParseBudget(value string) (decimal.Decimal, error) {
	amount, err := ParseAmount(StandardizeAmount(value))
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("budget must not be negative, got %s", amount.String())
	}
	return amount, nil
}

// StandardizeAmount strips a leading currency marker and apostrophes and turns
// a single decimal comma into a dot.
func StandardizeAmount(amountStr string) string {
	s := strings.TrimSpace(amountStr)
	s = currencyMarkers.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "'", "")
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strings.TrimSpace(s)
}

// FormatAmount formats amount with two decimal places behind symbol.
// Symbols of three letters or more are separated by a space ("CHF 12.00").
func FormatAmount(amount decimal.Decimal, symbol string) string {
	formatted := amount.StringFixed(2)
	switch {
	case symbol == "":
		return formatted
	case len([]rune(symbol)) >= 3:
		return symbol + " " + formatted
	default:
		return symbol + formatted
	}
}
