// Package categorizer assigns one of the fixed expense labels to free-text
// entries. A Categorizer wraps a configured Classifier provider (Gemini,
// Hugging Face zero-shot, local naive Bayes or keyword rules) and maps every
// failure to the default label.
package categorizer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"golang.org/x/text/cases"
)

// ErrClassifierUnavailable is returned when no classifier is configured.
var ErrClassifierUnavailable = errors.New("no text classifier is configured")

// Categorizer applies the fallback rules around a Classifier.
type Categorizer struct {
	classifier Classifier
	labels     []string
	timeout    time.Duration
	logger     logging.Logger

	mu    sync.Mutex
	stats models.CategorizationStats
}

// NewCategorizer creates a categorizer over classifier. A nil classifier is
// allowed; Categorize then reports ErrClassifierUnavailable. A zero timeout
// leaves the caller's context as the only deadline.
func NewCategorizer(classifier Classifier, timeout time.Duration, logger logging.Logger) *Categorizer {
	return &Categorizer{
		classifier: classifier,
		labels:     models.CategoryLabels(),
		timeout:    timeout,
		logger:     logging.OrDiscard(logger),
	}
}

// ProviderName returns the name of the wrapped classifier, or "none".
func (c *Categorizer) ProviderName() string {
	if c.classifier == nil {
		return "none"
	}
	return c.classifier.Name()
}

// Labels returns the candidate labels offered to the classifier.
func (c *Categorizer) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Categorize returns the label for text. Classifier errors, timeouts, empty
// answers and unknown labels all yield models.DefaultCategory with a nil
// error; only a missing classifier is an error.
func (c *Categorizer) Categorize(ctx context.Context, text string) (string, error) {
	if c.classifier == nil {
		return "", ErrClassifierUnavailable
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log := c.logger.WithFields(
		logging.Field{Key: logging.FieldProvider, Value: c.classifier.Name()},
		logging.Field{Key: logging.FieldDescription, Value: text},
	)

	start := time.Now()
	raw, err := c.classifier.Classify(ctx, text, c.Labels())
	elapsed := time.Since(start)

	if err != nil {
		classErr := &parsererror.ClassificationError{Provider: c.classifier.Name(), Text: text, Err: err}
		log.WithError(classErr).Warn("Classification failed, using default category",
			logging.Field{Key: logging.FieldDuration, Value: elapsed.String()})
		c.recordFallback()
		return models.DefaultCategory, nil
	}

	label, ok := MatchLabel(raw, c.labels)
	if !ok {
		log.Warn("Classifier returned no usable label, using default category",
			logging.Field{Key: "raw_label", Value: raw})
		c.recordFallback()
		return models.DefaultCategory, nil
	}

	log.Debug("Entry classified",
		logging.Field{Key: logging.FieldCategory, Value: label},
		logging.Field{Key: logging.FieldDuration, Value: elapsed.String()})
	c.mu.Lock()
	c.stats.RecordClassified()
	c.mu.Unlock()
	return label, nil
}

// Stats returns a snapshot of the classification counters.
func (c *Categorizer) Stats() models.CategorizationStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Categorizer) recordFallback() {
	c.mu.Lock()
	c.stats.RecordFallback()
	c.mu.Unlock()
}

// MatchLabel maps a raw classifier answer onto labels. Surrounding spaces,
// quotes and trailing punctuation are ignored and the comparison is
// case-insensitive. It reports false when nothing matches.
func MatchLabel(raw string, labels []string) (string, bool) {
	candidate := strings.Trim(strings.TrimSpace(raw), "\"'`*.,;:!")
	if candidate == "" {
		return "", false
	}

	fold := cases.Fold()
	folded := fold.String(candidate)
	for _, label := range labels {
		if label == candidate || fold.String(label) == folded {
			return label, true
		}
	}
	return "", false
}
