package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors for expenses.
var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrEmptyCategory  = errors.New("category must not be empty")
)

// Expense is one logged expense.
type Expense struct {
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Source      string          `json:"source" yaml:"source"`
}

// NewManualExpense builds the record of a manual entry. The category is kept
// as typed; it does not have to be one of the fixed labels.
func NewManualExpense(category string, amount decimal.Decimal) Expense {
	return Expense{
		Description: ManualDescriptionPrefix + category,
		Amount:      amount,
		Category:    category,
		Source:      SourceManual,
	}
}

// NewTextExpense builds the record of a free-text entry.
func NewTextExpense(text string, amount decimal.Decimal, category string) Expense {
	return Expense{
		Description: text,
		Amount:      amount,
		Category:    category,
		Source:      SourceText,
	}
}

// Validate checks the invariants every stored expense must satisfy.
func (e Expense) Validate() error {
	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// IsManual reports whether the expense came from manual entry.
func (e Expense) IsManual() bool {
	return e.Source == SourceManual
}
