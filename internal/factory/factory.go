// Package factory builds the configured text classifier provider.
package factory

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// ProviderType names a classifier implementation.
type ProviderType string

const (
	Gemini      ProviderType = config.ProviderGemini
	HuggingFace ProviderType = config.ProviderHuggingFace
	Bayes       ProviderType = config.ProviderBayes
	Keyword     ProviderType = config.ProviderKeyword
	None        ProviderType = config.ProviderNone
)

// Providers lists every supported provider.
func Providers() []ProviderType {
	return []ProviderType{Gemini, HuggingFace, Bayes, Keyword, None}
}

func normalizeProvider(provider string) ProviderType {
	return ProviderType(strings.ToLower(strings.TrimSpace(provider)))
}

// NewClassifier returns the classifier for provider. None yields a nil
// classifier and no error. rules feed the local providers.
func NewClassifier(ctx context.Context, provider ProviderType, cfg *config.Config, rules []models.CategoryConfig, logger logging.Logger) (categorizer.Classifier, error) {
	switch normalizeProvider(string(provider)) {
	case Gemini:
		c, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	case HuggingFace:
		c, err := categorizer.NewHuggingFaceClient(cfg.AI.HFEndpoint, cfg.AI.HFModel, cfg.AI.HFToken, nil, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	case Bayes:
		c, err := categorizer.NewBayesClassifier(rules, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	case Keyword:
		return categorizer.NewKeywordClassifier(rules, logger), nil
	case None:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s", provider)
	}
}

// NewClassifierWithFallback builds the configured provider and falls back to
// the local Bayes classifier, then to keyword rules, when it cannot be built
// (typically a missing API key).
func NewClassifierWithFallback(ctx context.Context, cfg *config.Config, rules []models.CategoryConfig, logger logging.Logger) (categorizer.Classifier, error) {
	logger = logging.OrDiscard(logger)
	provider := normalizeProvider(cfg.AI.Provider)

	classifier, err := NewClassifier(ctx, provider, cfg, rules, logger)
	if err == nil {
		return classifier, nil
	}
	if provider == Bayes || provider == Keyword {
		logger.WithError(err).Warn("Local classifier unavailable, using keyword rules",
			logging.Field{Key: logging.FieldProvider, Value: string(provider)})
		return categorizer.NewKeywordClassifier(rules, logger), nil
	}
	if provider != Gemini && provider != HuggingFace {
		return nil, err
	}

	logger.WithError(err).Warn("Classifier provider unavailable, falling back to local Bayes classifier",
		logging.Field{Key: logging.FieldProvider, Value: string(provider)})

	fallback, fbErr := NewClassifier(ctx, Bayes, cfg, rules, logger)
	if fbErr != nil {
		logger.WithError(fbErr).Warn("Bayes classifier unavailable, using keyword rules")
		return categorizer.NewKeywordClassifier(rules, logger), nil
	}
	return fallback, nil
}
