// Package aggregator derives totals, category breakdowns and the budget
// status from an expense log.
package aggregator

import (
	"sort"

	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate summarizes records. It returns false for an empty log. A zero
// budget disables the budget check. The input is not modified.
func Aggregate(records []models.Expense, budget decimal.Decimal) (models.Summary, bool) {
	if len(records) == 0 {
		return models.Summary{}, false
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}

	categories := ByCategory(records)
	count := len(records)

	summary := models.Summary{
		Total:       total,
		Count:       count,
		Average:     total.Div(decimal.NewFromInt(int64(count))),
		Categories:  categories,
		TopCategory: categories[0].Category,
		TopAmount:   categories[0].Amount,
		Budget:      CheckBudget(total, budget),
	}
	return summary, true
}

// ByCategory sums amounts per category, ordered by descending sum. Equal
// sums keep the order in which the categories first appear in records.
func ByCategory(records []models.Expense) []models.CategoryTotal {
	index := make(map[string]int)
	totals := make([]models.CategoryTotal, 0)

	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, models.CategoryTotal{Category: r.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(r.Amount)
		totals[i].Count++
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals
}

// CheckBudget compares total with budget. Budgets of zero or less are not checked.
func CheckBudget(total, budget decimal.Decimal) models.BudgetStatus {
	if !budget.IsPositive() {
		return models.BudgetStatus{}
	}
	return models.BudgetStatus{
		Checked:    true,
		Budget:     budget,
		OverBudget: total.GreaterThan(budget),
		Remaining:  budget.Sub(total),
	}
}
