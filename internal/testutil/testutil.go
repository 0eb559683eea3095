// Package testutil holds helpers shared by command tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/stretchr/testify/require"
)

// NewContainer builds a container with the keyword provider, the built-in
// category rules and a mock logger.
func NewContainer(t *testing.T, provider string) *container.Container {
	t.Helper()

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.AI.Provider = provider
	cfg.AI.TimeoutSeconds = 5
	cfg.Categories.File = filepath.Join(t.TempDir(), "categories.yaml")
	cfg.Budget.Default = 1000
	cfg.Display.CurrencySymbol = "₹"
	cfg.CSV.Delimiter = ","

	c, err := container.NewContainerWithLogger(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}
