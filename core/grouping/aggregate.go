package grouping

import (
	"copyshop-pricing/core/pricing"
	"copyshop-pricing/core/types"
)

// ItemPrice is one line of a group price breakdown
type ItemPrice struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
	Pages    int64  `json:"pages"`

	// UnitPrice is the unrounded print and cover price of one unit
	UnitPrice types.Sides `json:"unit_price"`

	// Adjustment is the manual delta per unit
	Adjustment types.Sides `json:"adjustment"`

	// Total is (UnitPrice + Adjustment) * Quantity, unrounded
	Total types.Sides `json:"total"`

	Breakdown pricing.Breakdown `json:"breakdown"`
	DoRound   bool              `json:"do_round"`
}

// GroupPriceResult is the price of a group of items rounded once
type GroupPriceResult struct {
	// RawTotal is the sum of unrounded unit prices times quantities
	RawTotal types.Sides `json:"raw_total"`

	// Adjustments is the sum of manual deltas times quantities
	Adjustments types.Sides `json:"adjustments"`

	// GroupTotal is RawTotal, ceiled once when rounding applies, plus Adjustments
	GroupTotal types.Sides `json:"group_total"`

	ItemPrices []ItemPrice `json:"item_prices"`
	IsRounded  bool        `json:"is_rounded"`
	RoundTo    types.Money `json:"round_to"`
}

// CalculateGroupPrice prices a group of lines together.
//
// Item prices are summed without per-item rounding. If any item opts into
// rounding, the sum is ceiled once with the settings' granularity. Manual
// deltas are added after that step, as they are for single items.
// An empty group yields a zero result with a rounding step of 1.
func CalculateGroupPrice(items []types.LineItem, settings *types.PriceSettings) GroupPriceResult {
	result := GroupPriceResult{
		RoundTo:    types.NewMoney(1),
		ItemPrices: []ItemPrice{},
	}
	if len(items) == 0 {
		return result
	}

	shouldRound := false
	for _, item := range items {
		b := pricing.RawPrice(item.Record, settings)
		total := b.Combined.MulInt(item.Quantity)
		adjustment := item.Record.ChangePrice.MulInt(item.Quantity)

		result.RawTotal = result.RawTotal.Add(total)
		result.Adjustments = result.Adjustments.Add(adjustment)
		result.ItemPrices = append(result.ItemPrices, ItemPrice{
			ID:         item.Record.ID,
			Quantity:   item.Quantity,
			Pages:      item.Record.Pages,
			UnitPrice:  b.Combined,
			Adjustment: item.Record.ChangePrice,
			Total:      total.Add(adjustment),
			Breakdown:  b,
			DoRound:    item.Record.DoRound,
		})
		if item.Record.DoRound {
			shouldRound = true
		}
	}

	rounded := result.RawTotal
	if shouldRound {
		result.IsRounded = true
		result.RoundTo = settings.RoundingStep()
		rounded = rounded.CeilTo(result.RoundTo)
	}
	result.GroupTotal = rounded.Add(result.Adjustments)
	return result
}

// PricedGroup is a group together with its price
type PricedGroup struct {
	ID      string           `json:"id"`
	Members []types.LineItem `json:"members"`
	GroupPriceResult
}

// PriceGroups prices every group of a partition, in partition order
func PriceGroups(groups *Groups[types.LineItem], settings *types.PriceSettings) []PricedGroup {
	out := make([]PricedGroup, 0, groups.Len())
	for _, g := range groups.All() {
		out = append(out, PricedGroup{
			ID:               g.ID,
			Members:          g.Members,
			GroupPriceResult: CalculateGroupPrice(g.Members, settings),
		})
	}
	return out
}
