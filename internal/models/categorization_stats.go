package models

import (
	"fjacquet/expense-tracker/internal/logging"
)

// CategorizationStats counts free-text classification outcomes within a session.
type CategorizationStats struct {
	Total      int `json:"total" yaml:"total"`           // entries sent to the classifier
	Classified int `json:"classified" yaml:"classified"` // entries that received a label from the classifier
	FellBack   int `json:"fell_back" yaml:"fell_back"`   // entries that fell back to the default category
}

// RecordClassified counts an entry labelled by the classifier.
func (cs *CategorizationStats) RecordClassified() {
	cs.Total++
	cs.Classified++
}

// RecordFallback counts an entry that fell back to the default category.
func (cs *CategorizationStats) RecordFallback() {
	cs.Total++
	cs.FellBack++
}

// SuccessRate returns the classified percentage, zero when nothing was classified.
func (cs CategorizationStats) SuccessRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Classified) / float64(cs.Total) * 100.0
}

// LogSummary logs the counters at info level.
func (cs CategorizationStats) LogSummary(logger logging.Logger, provider string) {
	if logger == nil {
		return
	}

	logger.Info("Categorization summary",
		logging.Field{Key: logging.FieldProvider, Value: provider},
		logging.Field{Key: "total_entries", Value: cs.Total},
		logging.Field{Key: "classified", Value: cs.Classified},
		logging.Field{Key: "fell_back", Value: cs.FellBack},
		logging.Field{Key: "success_rate", Value: cs.SuccessRate()},
	)
}
