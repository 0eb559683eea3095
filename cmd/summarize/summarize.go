// Package summarize provides the one-shot summary command
package summarize

import (
	"fmt"
	"strings"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

// Options holds the summarize flags.
type Options struct {
	Categories string
	Amounts    string
	Entries    []string
	Budget     string
	Format     string
	Export     string
}

var opts = Options{}

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a batch of expenses in one shot",
	Long: `Summarize a batch of expenses given as manual categories/amounts and/or
free-text entries, then print the log, totals, budget status and the
per-category breakdown.

Example:
  expense-tracker summarize --categories "Food, Transport" --amounts "100, 50" \
    --entry "Doctor visit 600" --budget 500`,
	RunE: runSummarize,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Categories, "categories", "c", "", "Comma-separated categories of manual expenses")
	Cmd.Flags().StringVarP(&opts.Amounts, "amounts", "a", "", "Comma-separated amounts matching --categories")
	Cmd.Flags().StringArrayVarP(&opts.Entries, "entry", "e", nil, "Free-text expense entry (repeatable)")
	Cmd.Flags().StringVarP(&opts.Budget, "budget", "b", "", "Budget to check against, 0 disables the check (default: budget.default)")
	Cmd.Flags().StringVarP(&opts.Format, "format", "f", report.FormatText, "Output format: text, json or yaml")
	Cmd.Flags().StringVarP(&opts.Export, "export", "x", "", "Also write the expense log to this CSV file")
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	c, err := common.Container()
	if err != nil {
		return err
	}

	if err := validation.IsValidOutputFormat(opts.Format); err != nil {
		return err
	}
	if opts.Export != "" {
		if err := validation.IsValidExportPath(opts.Export); err != nil {
			return err
		}
	}
	format := strings.ToLower(opts.Format)

	budget, err := common.ResolveBudget(opts.Budget)
	if err != nil {
		return err
	}

	cfg := c.GetConfig()
	renderer := c.GetTextRenderer()
	out := cmd.OutOrStdout()
	sess := c.NewSession(budget)
	defer sess.Close()

	if strings.TrimSpace(opts.Categories) != "" || strings.TrimSpace(opts.Amounts) != "" {
		batch, err := sess.AddManual(opts.Categories, opts.Amounts)
		if err != nil {
			return err
		}
		if format == report.FormatText {
			fmt.Fprintln(out, renderer.AddedManual(batch))
		}
	}

	ctx := common.Context(cmd)
	for _, entry := range opts.Entries {
		e, err := sess.AddFromText(ctx, entry)
		if err != nil {
			return err
		}
		if e != nil && format == report.FormatText {
			fmt.Fprintln(out, renderer.Added(*e))
		}
	}

	if opts.Export != "" {
		if err := report.ExportCSV(opts.Export, sess.Expenses(), cfg.DelimiterRune(), c.GetLogger()); err != nil {
			return err
		}
	}

	if format != report.FormatText {
		data, err := c.GetReportGenerator().GenerateReport(report.NewReport(sess, cfg.Display.CurrencySymbol), format)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Expenses(sess.Expenses()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Summary(sess.Summary()))
	return nil
}
