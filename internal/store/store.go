// Package store provides the category rule store and the in-memory expense store.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryRuleSource provides the keyword rules used by the local classifiers.
type CategoryRuleSource interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// CategoryStore loads keyword rules from a YAML file.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store reading categoriesFile.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logging.OrDiscard(logger),
	}
}

// FindConfigFile looks for filename in the working directory, ./config,
// ./database and ~/.config/expense-tracker, in that order.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "expense-tracker", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the keyword rules. A missing file yields the built-in
// rules. Both the "categories: [...]" layout and a bare list are accepted.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Categories file not found, using built-in rules",
				logging.Field{Key: logging.FieldConfigFile, Value: filename})
			return DefaultCategoryRules(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	categories, err := parseCategories(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}

	s.logger.Debug("Loaded category rules",
		logging.Field{Key: logging.FieldConfigFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return categories, nil
}

func parseCategories(data []byte) ([]models.CategoryConfig, error) {
	var wrapped models.CategoriesConfig
	wrappedErr := yaml.Unmarshal(data, &wrapped)
	if wrappedErr == nil && len(wrapped.Categories) > 0 {
		return normalizeRules(wrapped.Categories)
	}

	var list []models.CategoryConfig
	if err := yaml.Unmarshal(data, &list); err == nil && len(list) > 0 {
		return normalizeRules(list)
	}

	if wrappedErr != nil {
		return nil, wrappedErr
	}
	return nil, errors.New("no categories defined")
}

func normalizeRules(rules []models.CategoryConfig) ([]models.CategoryConfig, error) {
	out := make([]models.CategoryConfig, 0, len(rules))
	for _, rule := range rules {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			return nil, errors.New("category without a name")
		}
		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			if keyword = strings.ToLower(strings.TrimSpace(keyword)); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		out = append(out, models.CategoryConfig{Name: name, Keywords: keywords})
	}
	return out, nil
}
