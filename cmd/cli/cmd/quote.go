// Package cmd - quote command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"copyshop-pricing/adapters/cart"
	"copyshop-pricing/core/grouping"
	"copyshop-pricing/core/quote"
	"copyshop-pricing/internal/config"
	"copyshop-pricing/internal/logging"
)

var (
	groupingMode string
	showDetails  bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <reservation.json>",
	Short: "Price a reservation",
	Long: `Group the publications of a reservation and price each group.

Related publications share one rounding step. Manual adjustments are
added after rounding.

Examples:
  copyshop quote reservation.json
  copyshop quote --mode one-hop reservation.json
  copyshop quote --format json --book pricebook.hcl reservation.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&groupingMode, "mode", "m", "", "grouping mode (transitive, one-hop)")
	quoteCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show per-line breakdown")
}

func runQuote(cmd *cobra.Command, args []string) error {
	settings, err := loadBook()
	if err != nil {
		return err
	}

	lines, err := cart.Load(args[0], settings)
	if err != nil {
		return err
	}

	mode, err := resolveMode()
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	q := quote.NewQuoter(
		quote.WithMode(mode),
		quote.WithLogger(logging.Named("quote")),
	).Quote(lines, settings)

	logging.Info("Quote complete",
		zap.String("quote_id", q.ID),
		zap.Int("groups", len(q.Groups)),
		zap.Int("diagnostics", len(q.Diagnostics)))

	details := config.Get().Output.ShowDetails
	if cmd.Flags().Changed("details") {
		details = showDetails
	}
	if err := f.RenderQuote(cmd.OutOrStdout(), q, details); err != nil {
		return fmt.Errorf("failed to render quote: %w", err)
	}
	return nil
}

// resolveMode prefers --mode over the configured grouping mode
func resolveMode() (grouping.Mode, error) {
	if groupingMode != "" {
		return grouping.ParseMode(groupingMode)
	}
	return config.Get().Mode(), nil
}
