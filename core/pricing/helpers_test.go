package pricing

import (
	"copyshop-pricing/core/types"
)

func money(v int64) types.Money { return types.NewMoney(v) }

func amount(s string) types.Money {
	m, err := types.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func entry(id string, oneFace, twoFaces int64) types.PriceEntry {
	return types.PriceEntry{ID: id, OneFacePrice: money(oneFace), TwoFacesPrice: money(twoFaces)}
}

// testSettings is a small shop: two paper sizes, three covers, one of
// which is not currently offered.
func testSettings() *types.PriceSettings {
	return &types.PriceSettings{
		Currency: types.CurrencyEGP,
		PaperTypes: []types.PaperType{
			{ID: "A4", Name: "A4 80g"},
			{ID: "A5", Name: "A5 80g"},
		},
		Covers: []types.CoverType{
			{ID: "soft", Name: "Soft cover", CompatiblePaperTypes: []string{"A4", "A5"}},
			{ID: "hard", Name: "Hard cover", CompatiblePaperTypes: []string{"A4"}},
			{ID: "spiral", Name: "Spiral", CompatiblePaperTypes: []string{"A4"}},
		},
		PaperPrices: []types.PriceEntry{
			entry("A4", 50, 80),
			entry("A5", 30, 45),
		},
		CoverPrices: []types.PriceEntry{
			entry("soft", 10, 15),
			entry("hard", 25, 40),
			entry("spiral", 8, 8),
		},
		AvailableCoverIDs:  []string{"soft", "hard"},
		RoundTo:            money(7),
		DefaultPaperTypeID: "A4",
	}
}
