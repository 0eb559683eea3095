package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// expenseRow is the CSV layout of one expense. Amounts keep two decimals.
type expenseRow struct {
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Source      string `csv:"Source"`
}

func toRows(expenses []models.Expense) []*expenseRow {
	rows := make([]*expenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, &expenseRow{
			Description: e.Description,
			Amount:      e.Amount.StringFixed(2),
			Category:    e.Category,
			Source:      e.Source,
		})
	}
	return rows
}

// WriteCSV writes expenses as CSV with a header line.
func WriteCSV(w io.Writer, expenses []models.Expense, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(toRows(expenses), gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ExportCSV writes expenses to csvFile, creating its directory if needed.
func ExportCSV(csvFile string, expenses []models.Expense, delimiter rune, logger logging.Logger) (err error) {
	logger = logging.OrDiscard(logger)
	wrap := func(e error) error {
		return &parsererror.ExportError{FilePath: csvFile, Format: "csv", Err: e}
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		return wrap(err)
	}

	file, err := os.OpenFile(csvFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile)
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = wrap(closeErr)
		}
	}()

	if err := WriteCSV(file, expenses, delimiter); err != nil {
		return wrap(err)
	}

	logger.Info("Exported expenses to CSV",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})
	return nil
}
