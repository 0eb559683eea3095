package categorizer

import (
	"context"
)

// Classifier assigns one of the candidate labels to a free-text description.
// Implementations may return an empty label when they have no opinion, or a
// label outside the candidate set; the Categorizer normalizes both.
type Classifier interface {
	// Classify returns the best label for text.
	Classify(ctx context.Context, text string, labels []string) (string, error)

	// Name returns the provider name for logging.
	Name() string
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, text string, labels []string) (string, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, text string, labels []string) (string, error) {
	return f(ctx, text, labels)
}

// Name returns "func".
func (f ClassifierFunc) Name() string {
	return "func"
}
