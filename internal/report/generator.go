package report

import (
	"encoding/json"
	"fmt"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the machine-readable view of a session.
type Report struct {
	SessionID      string                     `json:"session_id" yaml:"session_id"`
	GeneratedAt    time.Time                  `json:"generated_at" yaml:"generated_at"`
	Currency       string                     `json:"currency" yaml:"currency"`
	Expenses       []models.Expense           `json:"expenses" yaml:"expenses"`
	Summary        *models.Summary            `json:"summary,omitempty" yaml:"summary,omitempty"`
	Provider       string                     `json:"provider" yaml:"provider"`
	Classification models.CategorizationStats `json:"classification" yaml:"classification"`
}

// Source is what a report is built from.
type Source interface {
	ID() string
	Expenses() []models.Expense
	Summary() (models.Summary, bool)
	Provider() string
	Stats() models.CategorizationStats
}

// NewReport snapshots src. The summary is omitted for an empty log.
func NewReport(src Source, currency string) *Report {
	r := &Report{
		SessionID:      src.ID(),
		GeneratedAt:    time.Now().UTC(),
		Currency:       currency,
		Expenses:       src.Expenses(),
		Provider:       src.Provider(),
		Classification: src.Stats(),
	}
	if summary, ok := src.Summary(); ok {
		r.Summary = &summary
	}
	return r
}

// ReportGenerator serializes reports.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a generator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	return &ReportGenerator{logger: logging.OrDiscard(logger)}
}

// GenerateReport serializes report as json or yaml.
func (g *ReportGenerator) GenerateReport(report *Report, format string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("cannot generate a report from nil")
	}
	switch format {
	case FormatJSON:
		return g.generateJSONReport(report)
	case FormatYAML:
		return g.generateYAMLReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *ReportGenerator) generateYAMLReport(report *Report) ([]byte, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}
