package store

import (
	"fmt"
	"sync"

	"fjacquet/expense-tracker/internal/models"
)

// ExpenseStore is the ordered in-memory expense log of one session.
// Records are only ever appended, or removed all at once by Clear.
type ExpenseStore struct {
	mu    sync.RWMutex
	items []models.Expense
}

// NewExpenseStore returns an empty store.
func NewExpenseStore() *ExpenseStore {
	return &ExpenseStore{}
}

// Append validates and appends one expense.
func (s *ExpenseStore) Append(e models.Expense) error {
	return s.AppendAll([]models.Expense{e})
}

// AppendAll appends a batch in order. The whole batch is validated first;
// if any record is invalid nothing is appended.
func (s *ExpenseStore) AppendAll(batch []models.Expense) error {
	for i, e := range batch {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, batch...)
	return nil
}

// All returns a copy of the records in insertion order.
func (s *ExpenseStore) All() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Expense(nil), s.items...)
}

// Len returns the number of records.
func (s *ExpenseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes every record and returns how many were removed.
func (s *ExpenseStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.items)
	s.items = nil
	return n
}
