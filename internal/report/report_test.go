package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleExpenses() []models.Expense {
	return []models.Expense{
		models.NewManualExpense("Food", dec("100")),
		models.NewManualExpense("Transport", dec("25")),
		models.NewTextExpense("Dinner, with friends 50", dec("50"), "Food"),
	}
}

func TestTextRenderer_Expenses(t *testing.T) {
	r := NewTextRenderer("₹")

	out := r.Expenses(sampleExpenses())
	assert.Contains(t, out, "Expense Log")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "Manual: Food")
	assert.Contains(t, out, "₹100.00")
	assert.Contains(t, out, "Ai")
	assert.Equal(t, 4, strings.Count(out, "\n"))

	assert.Equal(t, "No expenses logged yet.", r.Expenses(nil))
}

func TestTextRenderer_TruncatesLongDescriptions(t *testing.T) {
	r := NewTextRenderer("")
	long := strings.Repeat("x", 60)

	out := r.Expenses([]models.Expense{models.NewTextExpense(long, dec("1"), "Others")})
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestTextRenderer_Summary(t *testing.T) {
	r := NewTextRenderer("₹")

	summary, ok := aggregator.Aggregate(sampleExpenses(), dec("100"))
	out := r.Summary(summary, ok)

	assert.Contains(t, out, "Total Spent: ₹175.00")
	assert.Contains(t, out, "Budget Exceeded! Your budget was ₹100.00, but you've spent ₹175.00")
	assert.Contains(t, out, "Summary by Category")
	assert.Contains(t, out, "85.7%")
	assert.Contains(t, out, "14.3%")
	assert.Contains(t, out, "Average expense per entry: ₹58.33")
	assert.Contains(t, out, "Top category: Food (₹150.00)")

	assert.Less(t, strings.Index(out, "Food "), strings.Index(out, "Transport "))
}

func TestTextRenderer_BudgetMessage(t *testing.T) {
	r := NewTextRenderer("₹")

	within, _ := aggregator.Aggregate(sampleExpenses(), dec("200"))
	assert.Contains(t, r.BudgetMessage(within), "You're within your budget of ₹200.00!")
	assert.Contains(t, r.BudgetMessage(within), "₹25.00 remaining")

	none, _ := aggregator.Aggregate(sampleExpenses(), decimal.Zero)
	assert.Empty(t, r.BudgetMessage(none))
}

func TestTextRenderer_SummaryEmpty(t *testing.T) {
	r := NewTextRenderer("₹")
	assert.Equal(t, "No expenses logged yet.", r.Summary(models.Summary{}, false))
}

func TestTextRenderer_ChartZeroAmounts(t *testing.T) {
	r := NewTextRenderer("")
	cats := []models.CategoryTotal{{Category: "Others", Amount: decimal.Zero, Count: 1}}

	out := r.Chart(cats, decimal.Zero)
	assert.Contains(t, out, "Others")
	assert.Contains(t, out, "0.0%")
	assert.NotContains(t, out, "█")
}

func TestTextRenderer_Messages(t *testing.T) {
	r := NewTextRenderer("₹")

	e := models.NewTextExpense("Doctor visit 600", dec("600"), "Healthcare")
	assert.Equal(t, "Added ₹600.00 under 'Healthcare'", r.Added(e))
	assert.Contains(t, r.AddedManual(sampleExpenses()[:2]), "2 manual")
	assert.Contains(t, r.Cleared(3), "3 removed")
	assert.Contains(t, r.Error(errors.New("boom")), "Error: boom")
	assert.Contains(t, r.Stats("bayes", models.CategorizationStats{Total: 2, Classified: 1, FellBack: 1}), "1 fell back to Others")
}

func sampleReport() *Report {
	summary, _ := aggregator.Aggregate(sampleExpenses(), dec("100"))
	return &Report{
		SessionID:   "abc",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Currency:    "₹",
		Expenses:    sampleExpenses(),
		Summary:     &summary,
		Provider:    "bayes",
	}
}

func TestReportGenerator_JSON(t *testing.T) {
	g := NewReportGenerator(logging.NewMockLogger())

	data, err := g.GenerateReport(sampleReport(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "abc", decoded["session_id"])
	assert.Len(t, decoded["expenses"], 3)

	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, "175", summary["total"])
	assert.Equal(t, "Food", summary["top_category"])
	assert.Equal(t, true, summary["budget"].(map[string]interface{})["over_budget"])
}

func TestReportGenerator_YAML(t *testing.T) {
	g := NewReportGenerator(nil)

	data, err := g.GenerateReport(sampleReport(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "bayes", decoded["provider"])
	assert.Contains(t, string(data), "top_category: Food")
}

func TestReportGenerator_Errors(t *testing.T) {
	g := NewReportGenerator(nil)

	_, err := g.GenerateReport(sampleReport(), "xml")
	assert.EqualError(t, err, "unsupported report format: xml")

	_, err = g.GenerateReport(nil, FormatJSON)
	assert.Error(t, err)
}

func TestReportGenerator_EmptyLogOmitsSummary(t *testing.T) {
	data, err := NewReportGenerator(nil).GenerateReport(&Report{SessionID: "x"}, FormatJSON)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\"summary\"")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleExpenses(), ','))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Description,Amount,Category,Source", lines[0])
	assert.Equal(t, "Manual: Food,100.00,Food,manual", lines[1])
	assert.Equal(t, `"Dinner, with friends 50",50.00,Food,ai`, lines[3])
}

func TestWriteCSV_Delimiter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleExpenses()[:1], ';'))
	assert.Contains(t, buf.String(), "Description;Amount;Category;Source")
}

func TestExportCSV(t *testing.T) {
	mock := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "nested", "expenses.csv")

	require.NoError(t, ExportCSV(path, sampleExpenses(), ',', mock))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Transport,25.00")
	assert.True(t, mock.HasEntry("INFO", "Exported expenses to CSV"))
}

func TestExportCSV_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	err := ExportCSV(filepath.Join(blocker, "out.csv"), sampleExpenses(), ',', nil)
	require.Error(t, err)

	var exportErr *parsererror.ExportError
	assert.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "csv", exportErr.Format)
}

type stubSource struct {
	expenses []models.Expense
}

func (s stubSource) ID() string                 { return "stub" }
func (s stubSource) Expenses() []models.Expense { return s.expenses }
func (s stubSource) Provider() string           { return "keyword" }
func (s stubSource) Stats() models.CategorizationStats {
	return models.CategorizationStats{Total: 1, Classified: 1}
}
func (s stubSource) Summary() (models.Summary, bool) {
	return aggregator.Aggregate(s.expenses, decimal.Zero)
}

func TestNewReport(t *testing.T) {
	r := NewReport(stubSource{expenses: sampleExpenses()}, "₹")
	assert.Equal(t, "stub", r.SessionID)
	assert.Equal(t, "keyword", r.Provider)
	require.NotNil(t, r.Summary)
	assert.Equal(t, "Food", r.Summary.TopCategory)
	assert.Equal(t, 1, r.Classification.Classified)
	assert.False(t, r.GeneratedAt.IsZero())

	empty := NewReport(stubSource{}, "₹")
	assert.Nil(t, empty.Summary)
}
