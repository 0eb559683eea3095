// Package categorize provides the single-entry classification command
package categorize

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/currencyutils"
	"fjacquet/expense-tracker/internal/textutils"

	"github.com/spf13/cobra"
)

var text string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a free-text expense without storing it",
	Long: `Extract the amount of a free-text expense and assign it a category with the
configured classifier. Nothing is stored.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&text, "text", "t", "", "Free-text expense, e.g. \"Paid ₹600 for medicines\"")
	_ = Cmd.MarkFlagRequired("text")
}

func categorizeFunc(cmd *cobra.Command, _ []string) error {
	c, err := common.Container()
	if err != nil {
		return err
	}

	amount, currency := textutils.ExtractAmountWithCurrency(text)
	category, err := c.GetCategorizer().Categorize(common.Context(cmd), text)
	if err != nil {
		return err
	}

	symbol := c.GetConfig().Display.CurrencySymbol
	if currency != "" && currency != symbol {
		symbol = currency
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Amount:   %s\n", currencyutils.FormatAmount(amount, symbol))
	fmt.Fprintf(out, "Category: %s\n", category)
	fmt.Fprintf(out, "Provider: %s\n", c.GetCategorizer().ProviderName())
	return nil
}
