// Package report renders expense logs and summaries as styled text, JSON,
// YAML and CSV.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/expense-tracker/internal/currencyutils"
	"fjacquet/expense-tracker/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const (
	defaultBarWidth       = 30
	maxDescriptionColumns = 40
)

// TextRenderer renders terminal output.
type TextRenderer struct {
	styles   Styles
	symbol   string
	barWidth int
}

// NewTextRenderer creates a renderer formatting amounts with symbol.
func NewTextRenderer(symbol string) *TextRenderer {
	return &TextRenderer{
		styles:   DefaultStyles(),
		symbol:   symbol,
		barWidth: defaultBarWidth,
	}
}

func (r *TextRenderer) money(amount decimal.Decimal) string {
	return currencyutils.FormatAmount(amount, r.symbol)
}

// Added confirms a free-text entry.
func (r *TextRenderer) Added(e models.Expense) string {
	return r.styles.Success.Render(fmt.Sprintf("Added %s under '%s'", r.money(e.Amount), e.Category))
}

// AddedManual confirms a manual batch.
func (r *TextRenderer) AddedManual(batch []models.Expense) string {
	return r.styles.Success.Render(fmt.Sprintf("Added %d manual expense(s)", len(batch)))
}

// Cleared confirms a clear-all.
func (r *TextRenderer) Cleared(n int) string {
	return r.styles.Success.Render(fmt.Sprintf("All previous expenses have been deleted (%d removed). You can add new expenses now!", n))
}

// Error renders an error message.
func (r *TextRenderer) Error(err error) string {
	return r.styles.Error.Render("Error: " + err.Error())
}

// Expenses renders the expense log as a table.
func (r *TextRenderer) Expenses(expenses []models.Expense) string {
	if len(expenses) == 0 {
		return r.styles.Muted.Render("No expenses logged yet.")
	}

	headers := []string{"#", "description", "category", "amount", "source"}
	rows := make([][]string, 0, len(expenses))
	for i, e := range expenses {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(e.Description, maxDescriptionColumns),
			e.Category,
			r.money(e.Amount),
			titleCaser.String(e.Source),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Expense Log"))
	b.WriteString("\n")

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = r.styles.Header.Render(pad(upperCaser.String(h), widths[i], i == 3))
	}
	b.WriteString(strings.Join(headerCells, "  "))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := r.styles.Cell
			if i == 3 {
				style = r.styles.Amount
			}
			cells[i] = style.Render(pad(cell, widths[i], i == 3))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BudgetMessage renders the budget check result, or "" when no budget is set.
func (r *TextRenderer) BudgetMessage(summary models.Summary) string {
	status := summary.Budget
	if !status.Checked {
		return ""
	}
	if status.OverBudget {
		return r.styles.Warning.Render(fmt.Sprintf("Budget Exceeded! Your budget was %s, but you've spent %s",
			r.money(status.Budget), r.money(summary.Total)))
	}
	return r.styles.Success.Render(fmt.Sprintf("You're within your budget of %s! (%s remaining)",
		r.money(status.Budget), r.money(status.Remaining)))
}

// Chart renders one horizontal bar per category with its share of total.
func (r *TextRenderer) Chart(categories []models.CategoryTotal, total decimal.Decimal) string {
	if len(categories) == 0 {
		return ""
	}

	nameWidth := 0
	amountWidth := 0
	for _, c := range categories {
		nameWidth = max(nameWidth, lipgloss.Width(c.Category))
		amountWidth = max(amountWidth, lipgloss.Width(r.money(c.Amount)))
	}

	maxAmount := categories[0].Amount
	for _, c := range categories[1:] {
		if c.Amount.GreaterThan(maxAmount) {
			maxAmount = c.Amount
		}
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Summary by Category"))
	for _, c := range categories {
		length := 0
		if maxAmount.IsPositive() {
			length = int(c.Amount.Mul(decimal.NewFromInt(int64(r.barWidth))).Div(maxAmount).Round(0).IntPart())
		}
		if length == 0 && c.Amount.IsPositive() {
			length = 1
		}
		bar := r.styles.Bar.Render(strings.Repeat("█", length)) + strings.Repeat(" ", r.barWidth-length)

		fmt.Fprintf(&b, "\n%s  %s  %s  %5s%%",
			pad(c.Category, nameWidth, false),
			bar,
			r.styles.Amount.Render(pad(r.money(c.Amount), amountWidth, true)),
			c.Share(total).StringFixed(1))
	}
	return b.String()
}

// SummaryBlock renders total, average and top category.
func (r *TextRenderer) SummaryBlock(summary models.Summary) string {
	lines := []string{
		fmt.Sprintf("Total expenses: %s", r.money(summary.Total)),
		fmt.Sprintf("Average expense per entry: %s", r.money(summary.Average)),
		fmt.Sprintf("Top category: %s (%s)", summary.TopCategory, r.money(summary.TopAmount)),
	}
	return r.styles.Summary.Render(strings.Join(lines, "\n"))
}

// Summary renders the total, the budget message, the category chart and the
// summary block. ok=false (empty log) renders a placeholder.
func (r *TextRenderer) Summary(summary models.Summary, ok bool) string {
	if !ok {
		return r.styles.Muted.Render("No expenses logged yet.")
	}

	parts := []string{
		r.styles.Title.Render("Total Spent: ") + r.styles.Amount.Render(r.money(summary.Total)),
	}
	if msg := r.BudgetMessage(summary); msg != "" {
		parts = append(parts, msg)
	}
	parts = append(parts, "", r.Chart(summary.Categories, summary.Total), "", r.SummaryBlock(summary))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Stats renders the free-text classification counters.
func (r *TextRenderer) Stats(provider string, stats models.CategorizationStats) string {
	return r.styles.Muted.Render(fmt.Sprintf("Classifier: %s, %d classified, %d fell back to %s",
		provider, stats.Classified, stats.FellBack, models.DefaultCategory))
}

func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
