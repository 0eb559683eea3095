// Package session owns one user's expense log, budget and categorizer.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/currencyutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"
	"fjacquet/expense-tracker/internal/store"
	"fjacquet/expense-tracker/internal/textutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session is a single expense-tracking session. The log lives in memory and
// is discarded with the session.
type Session struct {
	id          string
	expenses    *store.ExpenseStore
	categorizer *categorizer.Categorizer
	logger      logging.Logger

	mu     sync.RWMutex
	budget decimal.Decimal
}

// New creates a session with an empty log. cat may be nil, in which case
// free-text entries fail with categorizer.ErrClassifierUnavailable.
func New(cat *categorizer.Categorizer, budget decimal.Decimal, logger logging.Logger) *Session {
	if cat == nil {
		cat = categorizer.NewCategorizer(nil, 0, logger)
	}
	if budget.IsNegative() {
		budget = decimal.Zero
	}

	id := uuid.NewString()
	logger = logging.OrDiscard(logger).WithField(logging.FieldSession, id)
	logger.Debug("Session started",
		logging.Field{Key: logging.FieldProvider, Value: cat.ProviderName()},
		logging.Field{Key: logging.FieldBudget, Value: budget.String()})

	return &Session{
		id:          id,
		expenses:    store.NewExpenseStore(),
		categorizer: cat,
		logger:      logger,
		budget:      budget,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AddManual parses a comma-separated list of categories and a matching list
// of amounts and appends one expense per pair. Any invalid element rejects
// the whole batch and leaves the log untouched.
func (s *Session) AddManual(categoriesField, amountsField string) ([]models.Expense, error) {
	categories := textutils.SplitList(categoriesField)
	rawAmounts := textutils.SplitList(amountsField)

	amounts := make([]decimal.Decimal, 0, len(rawAmounts))
	for _, raw := range rawAmounts {
		amount, err := currencyutils.ParseAmount(raw)
		if err != nil {
			return nil, &parsererror.ValidationError{Field: "amount", Value: raw, Reason: "amounts must be numeric"}
		}
		amounts = append(amounts, amount)
	}

	if len(categories) != len(amounts) {
		return nil, &parsererror.ValidationError{
			Field:  "manual entry",
			Reason: fmt.Sprintf("number of categories (%d) and amounts (%d) must match", len(categories), len(amounts)),
		}
	}

	batch := make([]models.Expense, 0, len(categories))
	for i, category := range categories {
		if category == "" {
			return nil, &parsererror.ValidationError{Field: "category", Reason: fmt.Sprintf("entry %d is empty", i+1)}
		}
		if amounts[i].IsNegative() {
			return nil, &parsererror.ValidationError{Field: "amount", Value: rawAmounts[i], Reason: "amounts must not be negative"}
		}
		batch = append(batch, models.NewManualExpense(category, amounts[i]))
	}

	if err := s.expenses.AppendAll(batch); err != nil {
		return nil, fmt.Errorf("failed to store manual entries: %w", err)
	}

	s.logger.Info("Manual expenses added",
		logging.Field{Key: logging.FieldOperation, Value: "add_manual"},
		logging.Field{Key: logging.FieldCount, Value: len(batch)})
	return batch, nil
}

// AddFromText extracts the amount from text, classifies it and appends the
// resulting expense with text, as typed, for its description. Blank text is
// a no-op returning (nil, nil).
func (s *Session) AddFromText(ctx context.Context, text string) (*models.Expense, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	amount, currency := textutils.ExtractAmountWithCurrency(text)

	category, err := s.categorizer.Categorize(ctx, text)
	if err != nil {
		if errors.Is(err, categorizer.ErrClassifierUnavailable) {
			s.logger.Warn("Free-text entry rejected, no classifier configured",
				logging.Field{Key: logging.FieldDescription, Value: text})
		}
		return nil, fmt.Errorf("failed to categorize entry: %w", err)
	}

	expense := models.NewTextExpense(text, amount, category)
	if err := s.expenses.Append(expense); err != nil {
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	s.logger.Info("Expense added from text",
		logging.Field{Key: logging.FieldOperation, Value: "add_text"},
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()},
		logging.Field{Key: logging.FieldCurrency, Value: currency})
	return &expense, nil
}

// Clear removes every expense and returns how many were removed.
func (s *Session) Clear() int {
	n := s.expenses.Clear()
	s.logger.Info("Expenses cleared",
		logging.Field{Key: logging.FieldOperation, Value: "clear"},
		logging.Field{Key: logging.FieldCount, Value: n})
	return n
}

// SetBudget replaces the budget. Zero disables the budget check.
func (s *Session) SetBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return &parsererror.ValidationError{Field: "budget", Value: budget.String(), Reason: "budget must not be negative"}
	}
	s.mu.Lock()
	s.budget = budget
	s.mu.Unlock()

	s.logger.Debug("Budget set", logging.Field{Key: logging.FieldBudget, Value: budget.String()})
	return nil
}

// Budget returns the current budget.
func (s *Session) Budget() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget
}

// Expenses returns a copy of the log in insertion order.
func (s *Session) Expenses() []models.Expense {
	return s.expenses.All()
}

// Len returns the number of logged expenses.
func (s *Session) Len() int {
	return s.expenses.Len()
}

// Summary aggregates the log against the current budget. It returns false
// when the log is empty.
func (s *Session) Summary() (models.Summary, bool) {
	return aggregator.Aggregate(s.expenses.All(), s.Budget())
}

// Stats returns the free-text classification counters.
func (s *Session) Stats() models.CategorizationStats {
	return s.categorizer.Stats()
}

// Provider returns the name of the classifier behind free-text entries.
func (s *Session) Provider() string {
	return s.categorizer.ProviderName()
}

// Close logs the classification summary of the session.
func (s *Session) Close() {
	s.categorizer.Stats().LogSummary(s.logger, s.Provider())
}
