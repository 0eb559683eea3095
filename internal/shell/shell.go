// Package shell implements the line-oriented interactive session.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/expense-tracker/internal/currencyutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/session"
	"fjacquet/expense-tracker/internal/validation"
)

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

const helpText = `Commands:
  add <text>                       add an expense from free text ("Doctor visit 600")
  manual <categories> | <amounts>  add manual expenses ("Food, Transport | 100, 50")
  budget [amount]                  show or set the budget (0 disables the check)
  list                             show the expense log
  summary                          show totals, budget status and categories
  clear                            delete all expenses
  export <file.csv>                write the expense log as CSV
  report json|yaml                 print a machine-readable report
  stats                            show classifier statistics
  help                             show this help
  quit                             leave the session`

// Options configures rendering.
type Options struct {
	CurrencySymbol string
	Delimiter      rune
	Prompt         string
}

// Shell reads commands from in and writes results to out.
type Shell struct {
	session   *session.Session
	renderer  *report.TextRenderer
	generator *report.ReportGenerator
	opts      Options
	in        io.Reader
	out       io.Writer
	logger    logging.Logger
}

// New creates a shell over sess.
func New(sess *session.Session, opts Options, in io.Reader, out io.Writer, logger logging.Logger) *Shell {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.Prompt == "" {
		opts.Prompt = "expense> "
	}
	logger = logging.OrDiscard(logger)
	return &Shell{
		session:   sess,
		renderer:  report.NewTextRenderer(opts.CurrencySymbol),
		generator: report.NewReportGenerator(logger),
		opts:      opts,
		in:        in,
		out:       out,
		logger:    logger,
	}
}

// Run processes lines until quit, end of input or ctx cancellation.
// Command errors are printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	s.println("Expense tracker session " + s.session.ID() + ". Type 'help' for commands.")

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.print(s.opts.Prompt)
		if !scanner.Scan() {
			s.println("")
			return scanner.Err()
		}

		err := s.Execute(ctx, scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			s.println(s.renderer.Error(err))
		}
	}
}

// Execute runs one command line.
func (s *Shell) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	command, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "add":
		return s.add(ctx, args)
	case "manual":
		return s.manual(args)
	case "budget":
		return s.budget(args)
	case "list", "ls":
		s.println(s.renderer.Expenses(s.session.Expenses()))
	case "summary":
		s.println(s.renderer.Summary(s.session.Summary()))
	case "clear":
		s.println(s.renderer.Cleared(s.session.Clear()))
	case "export":
		return s.export(args)
	case "report":
		return s.report(args)
	case "stats":
		s.println(s.renderer.Stats(s.session.Provider(), s.session.Stats()))
	case "help", "?":
		s.println(helpText)
	case "quit", "exit", "q":
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q (type 'help')", command)
	}
	return nil
}

func (s *Shell) add(ctx context.Context, text string) error {
	if text == "" {
		return errors.New("usage: add <text>")
	}
	e, err := s.session.AddFromText(ctx, text)
	if err != nil {
		return err
	}
	s.println(s.renderer.Added(*e))
	return nil
}

func (s *Shell) manual(args string) error {
	categories, amounts, ok := strings.Cut(args, "|")
	if !ok {
		return errors.New("usage: manual <categories> | <amounts>")
	}
	batch, err := s.session.AddManual(categories, amounts)
	if err != nil {
		return err
	}
	s.println(s.renderer.AddedManual(batch))
	return nil
}

func (s *Shell) budget(args string) error {
	if args == "" {
		budget := s.session.Budget()
		if budget.IsZero() {
			s.println("No budget set.")
		} else {
			s.println("Budget: " + currencyutils.FormatAmount(budget, s.opts.CurrencySymbol))
		}
		return nil
	}

	budget, err := currencyutils.ParseBudget(args)
	if err != nil {
		return err
	}
	if err := s.session.SetBudget(budget); err != nil {
		return err
	}
	s.println("Budget set to " + currencyutils.FormatAmount(budget, s.opts.CurrencySymbol))
	return nil
}

func (s *Shell) export(path string) error {
	if path == "" {
		return errors.New("usage: export <file.csv>")
	}
	if err := validation.IsValidExportPath(path); err != nil {
		return err
	}
	expenses := s.session.Expenses()
	if err := report.ExportCSV(path, expenses, s.opts.Delimiter, s.logger); err != nil {
		return err
	}
	s.println(fmt.Sprintf("Exported %d expense(s) to %s", len(expenses), path))
	return nil
}

func (s *Shell) report(format string) error {
	if format == "" {
		format = report.FormatJSON
	}
	data, err := s.generator.GenerateReport(report.NewReport(s.session, s.opts.CurrencySymbol), strings.ToLower(format))
	if err != nil {
		return err
	}
	s.println(strings.TrimRight(string(data), "\n"))
	return nil
}

func (s *Shell) print(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		s.logger.WithError(err).Debug("Failed to write shell output")
	}
}

func (s *Shell) println(text string) {
	s.print(text + "\n")
}
