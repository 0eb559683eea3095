package models

import "github.com/shopspring/decimal"

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Count    int             `json:"count" yaml:"count"`
}

// Share returns the category's percentage of total, or zero when total is zero.
func (c CategoryTotal) Share(total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return c.Amount.Div(total).Mul(decimal.NewFromInt(100))
}

// BudgetStatus is the outcome of comparing the total with a budget.
type BudgetStatus struct {
	Checked    bool            `json:"checked" yaml:"checked"`
	Budget     decimal.Decimal `json:"budget" yaml:"budget"`
	OverBudget bool            `json:"over_budget" yaml:"over_budget"`
	Remaining  decimal.Decimal `json:"remaining" yaml:"remaining"`
}

// Summary holds the aggregates derived from a non-empty expense log.
type Summary struct {
	Total       decimal.Decimal `json:"total" yaml:"total"`
	Count       int             `json:"count" yaml:"count"`
	Average     decimal.Decimal `json:"average" yaml:"average"`
	Categories  []CategoryTotal `json:"categories" yaml:"categories"`
	TopCategory string          `json:"top_category" yaml:"top_category"`
	TopAmount   decimal.Decimal `json:"top_amount" yaml:"top_amount"`
	Budget      BudgetStatus    `json:"budget" yaml:"budget"`
}
