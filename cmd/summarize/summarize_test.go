package summarize_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/summarize"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/parsererror"
	"fjacquet/expense-tracker/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args map[string][]string) (string, error) {
	t.Helper()
	root.SetContainer(testutil.NewContainer(t, config.ProviderKeyword))
	t.Cleanup(func() { root.SetContainer(nil) })

	flags := summarize.Cmd.Flags()
	for name, values := range args {
		for _, v := range values {
			require.NoError(t, flags.Set(name, v))
		}
	}
	t.Cleanup(func() {
		for name := range args {
			f := flags.Lookup(name)
			if name == "entry" {
				require.NoError(t, f.Value.(interface{ Replace([]string) error }).Replace(nil))
			} else {
				require.NoError(t, f.Value.Set(f.DefValue))
			}
			f.Changed = false
		}
	})

	var out bytes.Buffer
	summarize.Cmd.SetOut(&out)
	err := summarize.Cmd.RunE(summarize.Cmd, nil)
	return out.String(), err
}

func TestSummarizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summarize", summarize.Cmd.Use)
	assert.Contains(t, summarize.Cmd.Short, "Summarize")
	assert.NotNil(t, summarize.Cmd.RunE)

	for name, short := range map[string]string{
		"categories": "c", "amounts": "a", "entry": "e", "budget": "b", "format": "f", "export": "x",
	} {
		flag := summarize.Cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, short, flag.Shorthand)
	}
	assert.Equal(t, "text", summarize.Cmd.Flags().Lookup("format").DefValue)
}

func TestSummarizeCommand_Text(t *testing.T) {
	out, err := run(t, map[string][]string{
		"categories": {"Food, Transport"},
		"amounts":    {"100, 25"},
		"entry":      {"Dinner 50", "Doctor visit 600"},
		"budget":     {"500"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Added 2 manual expense(s)")
	assert.Contains(t, out, "Added ₹50.00 under 'Food'")
	assert.Contains(t, out, "Added ₹600.00 under 'Healthcare'")
	assert.Contains(t, out, "Total Spent: ₹775.00")
	assert.Contains(t, out, "Budget Exceeded!")
	assert.Contains(t, out, "Top category: Healthcare (₹600.00)")
}

func TestSummarizeCommand_JSONAndExport(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "out.csv")
	out, err := run(t, map[string][]string{
		"categories": {"Food"},
		"amounts":    {"12.5"},
		"format":     {"json"},
		"export":     {csvFile},
		"budget":     {"0"},
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, "12.5", summary["total"])
	assert.Equal(t, false, summary["budget"].(map[string]interface{})["checked"])

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Manual: Food,12.50,Food,manual")
}

func TestSummarizeCommand_Errors(t *testing.T) {
	_, err := run(t, map[string][]string{"categories": {"Food, Transport"}, "amounts": {"1"}})
	assert.True(t, parsererror.IsValidation(err))

	_, err = run(t, map[string][]string{"format": {"xml"}})
	assert.Error(t, err)

	_, err = run(t, map[string][]string{"budget": {"-3"}})
	assert.Error(t, err)

	_, err = run(t, map[string][]string{"export": {filepath.Join(t.TempDir(), "out.json")}})
	assert.Error(t, err)
}

func TestSummarizeCommand_Empty(t *testing.T) {
	out, err := run(t, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses logged yet.")
}
