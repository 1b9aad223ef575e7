// Package cmd - price book commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"copyshop-pricing/adapters/pricebook"
)

// bookCmd groups price book commands
var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Inspect price books",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var bookValidateCmd = &cobra.Command{
	Use:   "validate [pricebook]",
	Short: "Check a price book for missing or inconsistent entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			bookPath = args[0]
		}

		settings, err := loadBook()
		w := cmd.OutOrStdout()
		if problems := pricebook.Problems(err); len(problems) > 0 {
			fmt.Fprintf(w, "price book has %d problem(s):\n", len(problems))
			for _, p := range problems {
				fmt.Fprintf(w, "  - %s\n", p)
			}
			return err
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "price book OK: %d paper type(s), %d cover(s), currency %s\n",
			len(settings.PaperTypes), len(settings.Covers), settings.Currency)
		if settings.DefaultPaperTypeID == "" {
			fmt.Fprintln(w, "  note: no default paper; lines without a paper type are priced at zero")
		}
		return nil
	},
}

func init() {
	bookCmd.AddCommand(bookValidateCmd)
}
