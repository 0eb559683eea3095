// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"strings"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/currencyutils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ErrNotInitialized is returned when a command runs without the root setup hook.
var ErrNotInitialized = errors.New("application is not initialized")

// Container returns the container set up by the root command.
func Container() (*container.Container, error) {
	c := root.GetContainer()
	if c == nil {
		return nil, ErrNotInitialized
	}
	return c, nil
}

// Context returns the command context, or context.Background when unset.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ResolveBudget parses a --budget flag value. An empty value yields a negative
// sentinel, which selects the configured default budget.
func ResolveBudget(flag string) (decimal.Decimal, error) {
	if strings.TrimSpace(flag) == "" {
		return decimal.NewFromInt(-1), nil
	}
	return currencyutils.ParseBudget(flag)
}
