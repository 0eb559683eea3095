// Package container provides dependency injection for the expense tracker.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/factory"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/session"
	"fjacquet/expense-tracker/internal/store"

	"github.com/shopspring/decimal"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       store.CategoryRuleSource
	classifier  categorizer.Classifier
	categorizer *categorizer.Categorizer
	generator   *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies with a logger
// built from cfg.
//
// Parameters:
//   - ctx: Context used while constructing remote classifier clients
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(ctx, cfg, cfg.NewLogger())
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithRules(ctx, cfg, store.NewCategoryStore(cfg.Categories.File, logging.OrDiscard(logger)), logger)
}

// NewContainerWithRules is NewContainerWithLogger reading keyword rules from
// source instead of categories.file.
func NewContainerWithRules(ctx context.Context, cfg *config.Config, source store.CategoryRuleSource, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if source == nil {
		return nil, fmt.Errorf("category rule source cannot be nil")
	}
	logger = logging.OrDiscard(logger)

	rules, err := source.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}

	classifier, err := factory.NewClassifierWithFallback(ctx, cfg, rules, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}

	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	cat := categorizer.NewCategorizer(classifier, timeout, logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: logging.FieldProvider, Value: cat.ProviderName()},
		logging.Field{Key: "rules_count", Value: len(rules)})

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       source,
		classifier:  classifier,
		categorizer: cat,
		generator:   report.NewReportGenerator(logger),
	}, nil
}

// NewSession starts a session sharing the container's categorizer. A
// negative budget selects budget.default from the configuration.
func (c *Container) NewSession(budget decimal.Decimal) *session.Session {
	if budget.IsNegative() {
		budget = c.DefaultBudget()
	}
	return session.New(c.categorizer, budget, c.logger)
}

// DefaultBudget returns budget.default as a decimal.
func (c *Container) DefaultBudget() decimal.Decimal {
	return decimal.NewFromFloat(c.config.Budget.Default)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetStore returns the container's category rule source.
func (c *Container) GetStore() store.CategoryRuleSource {
	return c.store
}

// GetClassifier returns the classifier provider, nil for provider "none".
func (c *Container) GetClassifier() categorizer.Classifier {
	return c.classifier
}

// GetReportGenerator returns the JSON/YAML report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// GetTextRenderer returns a renderer using the configured currency symbol.
func (c *Container) GetTextRenderer() *report.TextRenderer {
	return report.NewTextRenderer(c.config.Display.CurrencySymbol)
}

// Close releases the classifier client when it holds resources.
func (c *Container) Close() error {
	c.categorizer.Stats().LogSummary(c.logger, c.categorizer.ProviderName())
	if closer, ok := c.classifier.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close classifier: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
