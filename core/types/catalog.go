package types

// PaperType identifies a physical paper size or kind
type PaperType struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// CoverType identifies a cover material or size
type CoverType struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`

	// CompatiblePaperTypes lists the paper type ids this cover fits
	CompatiblePaperTypes []string `json:"compatible_paper_types"`
}

// FitsPaper reports whether the cover can be applied to a paper type
func (c CoverType) FitsPaper(paperTypeID string) bool {
	for _, id := range c.CompatiblePaperTypes {
		if id == paperTypeID {
			return true
		}
	}
	return false
}

// PriceEntry is a price quoted for a paper or cover type.
// For paper the amounts are per 100 pages; for covers they are a flat add-on.
type PriceEntry struct {
	ID            string `json:"id" validate:"required"`
	OneFacePrice  Money  `json:"one_face_price" validate:"gte=0"`
	TwoFacesPrice Money  `json:"two_faces_price" validate:"gte=0"`
}

// Sides returns the entry's amounts as a pair
func (e PriceEntry) Sides() Sides {
	return Sides{OneFace: e.OneFacePrice, TwoFaces: e.TwoFacesPrice}
}

// ResolvedCover is a cover type joined with its price entry
type ResolvedCover struct {
	CoverType
	Price PriceEntry `json:"price"`
}

// PriceSettings is the caller-supplied pricing configuration.
// The core only reads it; one snapshot can be shared by concurrent callers.
type PriceSettings struct {
	// Currency is the unit every amount is expressed in
	Currency Currency `json:"currency"`

	// PaperTypes is the paper catalog
	PaperTypes []PaperType `json:"paper_types" validate:"dive"`

	// Covers is the cover catalog, in catalog order.
	// Default cover selection is positional over this slice.
	Covers []CoverType `json:"covers" validate:"dive"`

	// PaperPrices are per-100-pages rates keyed by paper type id
	PaperPrices []PriceEntry `json:"paper_prices" validate:"dive"`

	// CoverPrices are flat add-on prices keyed by cover type id
	CoverPrices []PriceEntry `json:"cover_prices" validate:"dive"`

	// AvailableCoverIDs lists the covers currently offered
	AvailableCoverIDs []string `json:"available_cover_ids"`

	// RoundTo is the ceiling granularity; zero or less means 1
	RoundTo Money `json:"round_to" validate:"gte=0"`

	// DefaultPaperTypeID is offered to callers building new records
	DefaultPaperTypeID string `json:"default_paper_type_id"`
}

// RoundingStep returns the effective ceiling granularity
func (s *PriceSettings) RoundingStep() Money {
	if s == nil || !s.RoundTo.IsPositive() {
		return NewMoney(1)
	}
	return s.RoundTo
}

// IsCoverAvailable reports whether a cover id is currently offered
func (s *PriceSettings) IsCoverAvailable(coverID string) bool {
	if s == nil {
		return false
	}
	for _, id := range s.AvailableCoverIDs {
		if id == coverID {
			return true
		}
	}
	return false
}

// PaperType looks up a paper type by id
func (s *PriceSettings) PaperType(id string) (PaperType, bool) {
	if s == nil {
		return PaperType{}, false
	}
	for _, p := range s.PaperTypes {
		if p.ID == id {
			return p, true
		}
	}
	return PaperType{}, false
}
