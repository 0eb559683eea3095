package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/parsererror"
	"fjacquet/expense-tracker/internal/session"
	"fjacquet/expense-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, input string) (*Shell, *session.Session, *bytes.Buffer) {
	t.Helper()
	cat := categorizer.NewCategorizer(categorizer.NewKeywordClassifier(store.DefaultCategoryRules(), nil), time.Second, nil)
	sess := session.New(cat, decimal.Zero, logging.NewMockLogger())
	out := &bytes.Buffer{}
	sh := New(sess, Options{CurrencySymbol: "₹"}, strings.NewReader(input), out, nil)
	return sh, sess, out
}

func TestShell_Run(t *testing.T) {
	input := strings.Join([]string{
		"add Doctor visit 600",
		"manual Food, Transport | 100, 50",
		"budget 500",
		"summary",
		"quit",
		"add never reached 10",
	}, "\n")
	sh, sess, out := newTestShell(t, input)

	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, 3, sess.Len())
	text := out.String()
	assert.Contains(t, text, "Added ₹600.00 under 'Healthcare'")
	assert.Contains(t, text, "Added 2 manual expense(s)")
	assert.Contains(t, text, "Budget set to ₹500.00")
	assert.Contains(t, text, "Budget Exceeded! Your budget was ₹500.00, but you've spent ₹750.00")
	assert.Contains(t, text, "Top category: Healthcare (₹600.00)")
}

func TestShell_RunKeepsGoingAfterErrors(t *testing.T) {
	sh, sess, out := newTestShell(t, "frobnicate\nmanual Food | abc\nmanual Food | 12\n")

	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, `unknown command "frobnicate"`)
	assert.Contains(t, text, "invalid amount 'abc': amounts must be numeric")
	assert.Equal(t, 1, sess.Len())
}

func TestShell_RunStopsOnCancelledContext(t *testing.T) {
	sh, _, _ := newTestShell(t, "list\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

func TestShell_Execute(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		contains string
		wantErr  bool
	}{
		{name: "blank", line: "   "},
		{name: "comment", line: "# note"},
		{name: "help", line: "help", contains: "manual <categories> | <amounts>"},
		{name: "list empty", line: "list", contains: "No expenses logged yet."},
		{name: "summary empty", line: "summary", contains: "No expenses logged yet."},
		{name: "budget unset", line: "budget", contains: "No budget set."},
		{name: "stats", line: "stats", contains: "Classifier: keyword"},
		{name: "add without text", line: "add", wantErr: true},
		{name: "manual without separator", line: "manual Food 10", wantErr: true},
		{name: "negative budget", line: "budget -5", wantErr: true},
		{name: "budget huge exponent", line: "budget 1e9999999", wantErr: true},
		{name: "export without file", line: "export", wantErr: true},
		{name: "export wrong extension", line: "export out.txt", wantErr: true},
		{name: "report unknown format", line: "report xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, _, out := newTestShell(t, "")
			err := sh.Execute(context.Background(), tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestShell_ManualValidationError(t *testing.T) {
	sh, sess, _ := newTestShell(t, "")

	err := sh.Execute(context.Background(), "manual Food, Transport | 10")
	assert.True(t, parsererror.IsValidation(err))
	assert.Equal(t, 0, sess.Len())
}

func TestShell_Quit(t *testing.T) {
	sh, _, _ := newTestShell(t, "")
	for _, cmd := range []string{"quit", "exit", "QUIT"} {
		assert.ErrorIs(t, sh.Execute(context.Background(), cmd), ErrQuit)
	}
}

func TestShell_ClearAndList(t *testing.T) {
	sh, sess, out := newTestShell(t, "")
	ctx := context.Background()

	require.NoError(t, sh.Execute(ctx, "add taxi home 250"))
	require.NoError(t, sh.Execute(ctx, "list"))
	assert.Contains(t, out.String(), "taxi home 250")
	assert.Contains(t, out.String(), "Transport")

	require.NoError(t, sh.Execute(ctx, "clear"))
	assert.Contains(t, out.String(), "1 removed")
	assert.Equal(t, 0, sess.Len())
}

func TestShell_BudgetShowsCurrent(t *testing.T) {
	sh, sess, out := newTestShell(t, "")
	ctx := context.Background()

	require.NoError(t, sh.Execute(ctx, "budget ₹1'500"))
	assert.True(t, sess.Budget().Equal(decimal.NewFromInt(1500)))

	require.NoError(t, sh.Execute(ctx, "budget"))
	assert.Contains(t, out.String(), "Budget: ₹1500.00")
}

func TestShell_Export(t *testing.T) {
	sh, _, out := newTestShell(t, "")
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "expenses.csv")

	require.NoError(t, sh.Execute(ctx, "manual Food | 12.5"))
	require.NoError(t, sh.Execute(ctx, "export "+path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Manual: Food,12.50,Food,manual")
	assert.Contains(t, out.String(), "Exported 1 expense(s)")
}

func TestShell_ReportJSON(t *testing.T) {
	sh, sess, out := newTestShell(t, "")
	ctx := context.Background()

	require.NoError(t, sh.Execute(ctx, "manual Food | 10"))
	out.Reset()
	require.NoError(t, sh.Execute(ctx, "report json"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, sess.ID(), decoded["session_id"])

	out.Reset()
	require.NoError(t, sh.Execute(ctx, "report yaml"))
	assert.Contains(t, out.String(), "session_id: "+sess.ID())
}
