// Package cmd - price command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"copyshop-pricing/core/output"
	"copyshop-pricing/core/pricing"
	"copyshop-pricing/core/types"
	"copyshop-pricing/internal/errors"
)

var (
	priceID            string
	pricePaper         string
	pricePages         int64
	priceCover         string
	priceCoverless     bool
	priceTwoFacesCover bool
	priceRound         bool
	priceDeltaOne      string
	priceDeltaTwo      string
	priceOptions       bool
)

// priceCmd prices a single publication
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a single publication",
	Long: `Price one publication against the price book.

Without --paper the price book's default paper is used. Without --cover
the first cover that fits the paper is used, unless --coverless is set.

Examples:
  copyshop price --paper A4 --pages 200
  copyshop price --paper A4 --pages 200 --round --delta-one 5 --delta-two 5
  copyshop price --paper A4 --pages 60 --options`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVar(&priceID, "id", "", "publication id shown in the output")
	priceCmd.Flags().StringVarP(&pricePaper, "paper", "p", "", "paper type id")
	priceCmd.Flags().Int64VarP(&pricePages, "pages", "n", 0, "number of pages")
	priceCmd.Flags().StringVarP(&priceCover, "cover", "c", "", "cover type id")
	priceCmd.Flags().BoolVar(&priceCoverless, "coverless", false, "price without a cover")
	priceCmd.Flags().BoolVar(&priceTwoFacesCover, "two-faces-cover", false, "use the double-sided cover price")
	priceCmd.Flags().BoolVarP(&priceRound, "round", "r", false, "round up to the price book step")
	priceCmd.Flags().StringVar(&priceDeltaOne, "delta-one", "0", "manual adjustment to the one-face price")
	priceCmd.Flags().StringVar(&priceDeltaTwo, "delta-two", "0", "manual adjustment to the two-faces price")
	priceCmd.Flags().BoolVarP(&priceOptions, "options", "o", false, "also price every compatible cover")
}

func runPrice(cmd *cobra.Command, args []string) error {
	settings, err := loadBook()
	if err != nil {
		return err
	}

	record, err := priceRecord(settings)
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	report := &output.PriceReport{
		Record:   record,
		Currency: settings.Currency,
		Result:   pricing.CalculatePrice(record, settings),
	}
	if priceOptions {
		report.Options = pricing.CoverOptions(record, settings)
	}

	if err := f.RenderPrice(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to render price: %w", err)
	}
	return nil
}

func priceRecord(settings *types.PriceSettings) (types.PricingRecord, error) {
	deltaOne, err := types.ParseMoney(priceDeltaOne)
	if err != nil {
		return types.PricingRecord{}, errors.Wrap(errors.TypeInput, "invalid --delta-one", err)
	}
	deltaTwo, err := types.ParseMoney(priceDeltaTwo)
	if err != nil {
		return types.PricingRecord{}, errors.Wrap(errors.TypeInput, "invalid --delta-two", err)
	}

	paper := pricePaper
	if paper == "" {
		paper = settings.DefaultPaperTypeID
	}

	return types.PricingRecord{
		ID:            priceID,
		Pages:         pricePages,
		PaperTypeID:   paper,
		CoverTypeID:   priceCover,
		Coverless:     priceCoverless,
		TwoFacesCover: priceTwoFacesCover,
		DoRound:       priceRound,
		ChangePrice:   types.Sides{OneFace: deltaOne, TwoFaces: deltaTwo},
	}, nil
}
