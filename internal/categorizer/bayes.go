package categorizer

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/textutils"

	"github.com/jbrukh/bayesian"
)

// BayesClassifier is an offline naive Bayes (TF-IDF) classifier trained once
// from the category rules: each rule contributes one document made of its
// name and keywords.
type BayesClassifier struct {
	classes []bayesian.Class
	cl      *bayesian.Classifier
	logger  logging.Logger
}

// NewBayesClassifier trains a classifier from rules. At least two distinct
// rule names are required.
func NewBayesClassifier(rules []models.CategoryConfig, logger logging.Logger) (*BayesClassifier, error) {
	seen := make(map[string]bool)
	classes := make([]bayesian.Class, 0, len(rules))
	docs := make(map[bayesian.Class][]string)

	for _, rule := range rules {
		class := bayesian.Class(rule.Name)
		if !seen[rule.Name] {
			seen[rule.Name] = true
			classes = append(classes, class)
		}
		docs[class] = append(docs[class], textutils.Tokenize(rule.Name)...)
		for _, keyword := range rule.Keywords {
			docs[class] = append(docs[class], textutils.Tokenize(keyword)...)
		}
	}

	if len(classes) < 2 {
		return nil, fmt.Errorf("bayes classifier needs at least two categories, got %d", len(classes))
	}

	cl := bayesian.NewClassifierTfIdf(classes...)
	for _, class := range classes {
		cl.Learn(docs[class], class)
	}
	cl.ConvertTermsFreqToTfIdf()

	return &BayesClassifier{
		classes: classes,
		cl:      cl,
		logger:  logging.OrDiscard(logger),
	}, nil
}

// Name returns "bayes".
func (b *BayesClassifier) Name() string {
	return "bayes"
}

// Classify returns the most likely class. When no class is strictly more
// likely than the others (no known term in text) the default category is
// returned.
func (b *BayesClassifier) Classify(_ context.Context, text string, _ []string) (string, error) {
	terms := textutils.Tokenize(text)
	if len(terms) == 0 {
		return models.DefaultCategory, nil
	}

	scores, best, strict := b.cl.LogScores(terms)
	if !strict {
		b.logger.Debug("No decisive class, using default category",
			logging.Field{Key: logging.FieldDescription, Value: text})
		return models.DefaultCategory, nil
	}

	class := string(b.classes[best])
	b.logger.Debug("Bayes classification",
		logging.Field{Key: logging.FieldCategory, Value: class},
		logging.Field{Key: "score", Value: scores[best]},
		logging.Field{Key: "terms", Value: strings.Join(terms, " ")})
	return class, nil
}
