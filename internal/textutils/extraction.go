// Package textutils provides text extraction and tokenization utilities.
package textutils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// amountPattern matches an optional currency marker (the rupee sign or a
// three-letter upper-case code), optional whitespace and a number with at
// most one decimal separator. A separator only belongs to the number when a
// digit follows it.
var amountPattern = regexp.MustCompile(`(?:(₹|[A-Z]{3})\s*)?(\d+(?:[.,]\d+)?)`)

// ExtractAmount returns the first monetary amount found in text, or zero.
//
//	ExtractAmount("Paid ₹600 for medicines") -> 600
//	ExtractAmount("INR 45.50 taxi")          -> 45.5
//	ExtractAmount("12,5 bus")                -> 12.5
//	ExtractAmount("no numbers here")         -> 0
func ExtractAmount(text string) decimal.Decimal {
	amount, _ := ExtractAmountWithCurrency(text)
	return amount
}

// ExtractAmountWithCurrency is ExtractAmount that also returns the currency
// marker preceding the amount, or "" when there was none.
func ExtractAmountWithCurrency(text string) (decimal.Decimal, string) {
	matches := amountPattern.FindStringSubmatch(text)
	if len(matches) < 3 {
		return decimal.Zero, ""
	}

	number := strings.Replace(matches[2], ",", ".", 1)
	amount, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero, ""
	}
	return amount, matches[1]
}

// Tokenize lower-cases text and splits it into letter/digit words.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// SplitList splits a comma-separated field and trims every element. Empty
// elements are kept so that callers can detect them.
func SplitList(field string) []string {
	parts := strings.Split(field, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
