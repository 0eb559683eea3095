package categorizer

import (
	"context"
	"strings"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/textutils"
)

// KeywordClassifier picks the first rule with a keyword appearing as a
// whole word (or word sequence) in the text.
type KeywordClassifier struct {
	rules  []models.CategoryConfig
	logger logging.Logger
}

// NewKeywordClassifier creates a classifier over rules, evaluated in order.
func NewKeywordClassifier(rules []models.CategoryConfig, logger logging.Logger) *KeywordClassifier {
	return &KeywordClassifier{
		rules:  rules,
		logger: logging.OrDiscard(logger),
	}
}

// Name returns "keyword".
func (k *KeywordClassifier) Name() string {
	return "keyword"
}

// Classify returns the matching rule name, or an empty label when no keyword
// matches. Labels are not consulted; rule names are normalized by the caller.
func (k *KeywordClassifier) Classify(_ context.Context, text string, _ []string) (string, error) {
	haystack := paddedTokens(text)

	for _, rule := range k.rules {
		for _, keyword := range rule.Keywords {
			needle := paddedTokens(keyword)
			if needle == "  " {
				continue
			}
			if strings.Contains(haystack, needle) {
				k.logger.Debug("Keyword matched",
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Name})
				return rule.Name, nil
			}
		}
	}
	return "", nil
}

func paddedTokens(s string) string {
	return " " + strings.Join(textutils.Tokenize(s), " ") + " "
}
