package textutils_test

import (
	"testing"

	"fjacquet/expense-tracker/internal/textutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "rupee sign", input: "Paid ₹600 for medicines", expected: "600"},
		{name: "no numbers", input: "no numbers here", expected: "0"},
		{name: "currency code with space", input: "INR 45.50 taxi", expected: "45.5"},
		{name: "decimal comma", input: "Lunch 12,5 at the canteen", expected: "12.5"},
		{name: "first number wins", input: "Bought 2 pizzas for 300", expected: "2"},
		{name: "other currency code", input: "USD 19.99 streaming", expected: "19.99"},
		{name: "trailing comma is not part of the number", input: "taxi 12, then bus", expected: "12"},
		{name: "double separator stops the number", input: "cost 12,,5", expected: "12"},
		{name: "second separator stops the number", input: "paid 12.5.3", expected: "12.5"},
		{name: "trailing dot", input: "coffee 4.", expected: "4"},
		{name: "amount at start", input: "250 electricity bill", expected: "250"},
		{name: "empty input", input: "", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := textutils.ExtractAmount(tt.input)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, expected.Equal(result), "expected %s, got %s", expected, result)
			assert.False(t, result.IsNegative())
		})
	}
}

func TestExtractAmountWithCurrency(t *testing.T) {
	tests := []struct {
		input    string
		amount   string
		currency string
	}{
		{input: "Paid ₹600 for medicines", amount: "600", currency: "₹"},
		{input: "INR 45.50 taxi", amount: "45.5", currency: "INR"},
		{input: "spent 80 on snacks", amount: "80", currency: ""},
		{input: "nothing", amount: "0", currency: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, currency := textutils.ExtractAmountWithCurrency(tt.input)
			assert.True(t, decimal.RequireFromString(tt.amount).Equal(amount))
			assert.Equal(t, tt.currency, currency)
		})
	}
}

func TestExtractAmount_NegativeSignIgnored(t *testing.T) {
	result := textutils.ExtractAmount("refund -50")
	assert.True(t, decimal.NewFromInt(50).Equal(result))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"paid", "600", "for", "medicines"}, textutils.Tokenize("Paid ₹600 for medicines!"))
	assert.Empty(t, textutils.Tokenize("  ,.; "))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Food", "Transport", "Entertainment"}, textutils.SplitList("Food, Transport ,Entertainment"))
	assert.Equal(t, []string{"100", ""}, textutils.SplitList("100,"))
	assert.Equal(t, []string{""}, textutils.SplitList(""))
}
