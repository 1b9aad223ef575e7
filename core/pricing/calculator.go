package pricing

import (
	"copyshop-pricing/core/types"
)

// Option overrides part of a record for a single calculation
type Option func(*overrides)

type overrides struct {
	paperTypeID *string
	coverTypeID *string
}

// WithPaperType prices the record as if it used another paper type
func WithPaperType(id string) Option {
	return func(o *overrides) {
		o.paperTypeID = &id
	}
}

// WithCover prices the record as if it used another cover
func WithCover(id string) Option {
	return func(o *overrides) {
		o.coverTypeID = &id
	}
}

// Breakdown is the unrounded price of one unit of a record
type Breakdown struct {
	// Print is pages times the per-100-pages rate, per side
	Print types.Sides `json:"print"`

	// CoverPrice is the flat cover add-on applied to both sides
	CoverPrice types.Money `json:"cover_price"`

	// Combined is Print plus CoverPrice
	Combined types.Sides `json:"combined"`

	Cover *types.ResolvedCover `json:"cover,omitempty"`

	PaperTypeID     string `json:"paper_type_id"`
	PaperPriceFound bool   `json:"paper_price_found"`

	// CoverMissing is set when a cover was asked for but none resolved
	CoverMissing bool `json:"cover_missing"`
}

// RawPrice computes the combined print and cover price of one unit,
// before any rounding or manual delta.
func RawPrice(record types.PricingRecord, settings *types.PriceSettings, opts ...Option) Breakdown {
	var o overrides
	for _, opt := range opts {
		opt(&o)
	}

	paperTypeID := record.PaperTypeID
	if o.paperTypeID != nil {
		paperTypeID = *o.paperTypeID
	}
	coverTypeID := record.CoverTypeID
	if o.coverTypeID != nil {
		coverTypeID = *o.coverTypeID
	}

	b := Breakdown{PaperTypeID: paperTypeID}

	paper, found := ResolvePaperPrice(paperTypeID, settings)
	b.PaperPriceFound = found
	b.Print = types.Sides{
		OneFace:  paper.OneFacePrice.PerHundred(record.Pages),
		TwoFaces: paper.TwoFacesPrice.PerHundred(record.Pages),
	}

	if !record.Coverless {
		if cover, ok := ResolveCover(paperTypeID, coverTypeID, settings); ok {
			b.Cover = &cover
			if record.TwoFacesCover {
				b.CoverPrice = cover.Price.TwoFacesPrice
			} else {
				b.CoverPrice = cover.Price.OneFacePrice
			}
		} else {
			b.CoverMissing = coverTypeID != ""
		}
	}

	b.Combined = b.Print.AddFlat(b.CoverPrice)
	return b
}

// RoundingStep returns the granularity applied to a record
func RoundingStep(record types.PricingRecord, settings *types.PriceSettings) types.Money {
	if !record.DoRound {
		return types.NewMoney(1)
	}
	return settings.RoundingStep()
}

// CalculatePrice computes the final one-sided and two-sided price of a record.
//
// The combined price is ceiled to the rounding step (1 unless the record opts
// into the settings' rounding) and the manual delta is added afterwards, so
// manual adjustments are never rounded.
func CalculatePrice(record types.PricingRecord, settings *types.PriceSettings, opts ...Option) types.PriceResult {
	b := RawPrice(record, settings, opts...)
	step := RoundingStep(record, settings)
	final := b.Combined.CeilTo(step).Add(record.ChangePrice)

	return types.PriceResult{
		OneFacePrice:    final.OneFace,
		TwoFacesPrice:   final.TwoFaces,
		ResolvedCover:   b.Cover,
		DoRound:         record.DoRound,
		RoundTo:         step,
		PaperPriceFound: b.PaperPriceFound,
	}
}
