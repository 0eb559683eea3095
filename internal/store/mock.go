package store

import (
	"fjacquet/expense-tracker/internal/models"
)

// MockCategoryStore is a CategoryRuleSource for tests.
type MockCategoryStore struct {
	Categories          []models.CategoryConfig
	LoadCategoriesError error
	Calls               int
}

// LoadCategories returns the configured rules or error.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	m.Calls++
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}
