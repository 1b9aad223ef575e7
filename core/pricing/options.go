package pricing

import (
	"copyshop-pricing/core/types"
)

// CoverOption is the price a record would have with a given cover
type CoverOption struct {
	// Cover is nil for the coverless option
	Cover *types.ResolvedCover `json:"cover,omitempty"`
	Price types.PriceResult    `json:"price"`
}

// Label returns a display name for the option
func (o CoverOption) Label() string {
	if o.Cover == nil {
		return "no cover"
	}
	if o.Cover.Name != "" {
		return o.Cover.Name
	}
	return o.Cover.ID
}

// CoverOptions prices a record once without a cover and once with every
// cover that fits its paper type, in catalog order.
func CoverOptions(record types.PricingRecord, settings *types.PriceSettings) []CoverOption {
	bare := record
	bare.Coverless = true
	options := []CoverOption{{Price: CalculatePrice(bare, settings)}}

	covered := record
	covered.Coverless = false
	for _, cover := range CompatibleCovers(record.PaperTypeID, settings) {
		cover := cover // per-iteration copy; go 1.21 loop variables are shared
		options = append(options, CoverOption{
			Cover: &cover,
			Price: CalculatePrice(covered, settings, WithCover(cover.ID)),
		})
	}
	return options
}
