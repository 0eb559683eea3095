// Package session provides the interactive session command
package session

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/shell"

	"github.com/spf13/cobra"
)

var budgetFlag string

// Cmd represents the session command
var Cmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive expense-tracking session",
	Long: `Start an interactive session. Expenses live in memory for the duration of
the session. Type 'help' inside the session for the list of commands.`,
	RunE: runSession,
}

func init() {
	Cmd.Flags().StringVarP(&budgetFlag, "budget", "b", "", "Budget for the session, 0 disables the check (default: budget.default)")
}

func runSession(cmd *cobra.Command, _ []string) error {
	c, err := common.Container()
	if err != nil {
		return err
	}

	budget, err := common.ResolveBudget(budgetFlag)
	if err != nil {
		return err
	}

	sess := c.NewSession(budget)
	defer sess.Close()

	cfg := c.GetConfig()
	sh := shell.New(sess, shell.Options{
		CurrencySymbol: cfg.Display.CurrencySymbol,
		Delimiter:      cfg.DelimiterRune(),
	}, cmd.InOrStdin(), cmd.OutOrStdout(), c.GetLogger())

	return sh.Run(common.Context(cmd))
}
