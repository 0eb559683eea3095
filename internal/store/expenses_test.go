package store

import (
	"sync"
	"testing"

	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manual(category string, amount int64) models.Expense {
	return models.NewManualExpense(category, decimal.NewFromInt(amount))
}

func TestExpenseStore_AppendPreservesOrder(t *testing.T) {
	s := NewExpenseStore()
	require.NoError(t, s.Append(manual("Food", 100)))
	require.NoError(t, s.AppendAll([]models.Expense{manual("Transport", 50), manual("Food", 25)}))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Food", "Transport", "Food"}, []string{all[0].Category, all[1].Category, all[2].Category})
	assert.Equal(t, 3, s.Len())
}

func TestExpenseStore_RejectsInvalidBatchAtomically(t *testing.T) {
	s := NewExpenseStore()
	require.NoError(t, s.Append(manual("Food", 10)))

	err := s.AppendAll([]models.Expense{manual("Transport", 5), manual("Rent", -1)})
	assert.ErrorIs(t, err, models.ErrNegativeAmount)

	err = s.Append(manual("", 5))
	assert.ErrorIs(t, err, models.ErrEmptyCategory)

	assert.Equal(t, 1, s.Len())
}

func TestExpenseStore_AllReturnsCopy(t *testing.T) {
	s := NewExpenseStore()
	require.NoError(t, s.Append(manual("Food", 10)))

	all := s.All()
	all[0].Category = "mutated"

	assert.Equal(t, "Food", s.All()[0].Category)
}

func TestExpenseStore_Clear(t *testing.T) {
	s := NewExpenseStore()
	require.NoError(t, s.AppendAll([]models.Expense{manual("Food", 1), manual("Food", 2)}))

	assert.Equal(t, 2, s.Clear())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
	assert.Equal(t, 0, s.Clear())

	require.NoError(t, s.Append(manual("Transport", 3)))
	assert.Equal(t, 1, s.Len())
}

func TestExpenseStore_ConcurrentReadsSeeWholeBatches(t *testing.T) {
	s := NewExpenseStore()
	batch := []models.Expense{manual("A", 1), manual("B", 1)}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.AppendAll(batch)
		}()
		go func() {
			defer wg.Done()
			assert.Equal(t, 0, s.Len()%2)
		}()
	}
	wg.Wait()
	assert.Equal(t, 40, s.Len())
}
