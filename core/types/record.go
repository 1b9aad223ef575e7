package types

// PricingRecord is the item being priced.
// It is built fresh from catalog or cart data for each pricing call.
//
// Defaulting rules:
//   - empty PaperTypeID resolves no paper price (print cost is zero)
//   - empty CoverTypeID selects the first compatible, available cover
//   - zero ChangePrice applies no manual delta
type PricingRecord struct {
	ID            string `json:"id"`
	Pages         int64  `json:"pages"`
	PaperTypeID   string `json:"paper_type_id"`
	CoverTypeID   string `json:"cover_type_id,omitempty"`
	Coverless     bool   `json:"coverless"`
	TwoFacesCover bool   `json:"two_faces_cover"`
	DoRound       bool   `json:"do_round"`

	// ChangePrice is a manual delta applied after rounding
	ChangePrice Sides `json:"change_price"`

	// RelatedPublicationIDs are records this one is priced together with
	RelatedPublicationIDs []string `json:"related_publication_ids,omitempty"`
}

// ItemID returns the record id
func (r PricingRecord) ItemID() string {
	return r.ID
}

// RelatedIDs returns the ids of related records
func (r PricingRecord) RelatedIDs() []string {
	return r.RelatedPublicationIDs
}

// PriceResult is the output of the single-item calculator
type PriceResult struct {
	OneFacePrice  Money          `json:"one_face_price"`
	TwoFacesPrice Money          `json:"two_faces_price"`
	ResolvedCover *ResolvedCover `json:"resolved_cover,omitempty"`

	// DoRound echoes the record flag for group rounding decisions
	DoRound bool `json:"do_round"`

	// RoundTo is the granularity that was applied
	RoundTo Money `json:"round_to"`

	// PaperPriceFound is false when the print cost degraded to zero
	PaperPriceFound bool `json:"paper_price_found"`
}

// Prices returns the final prices as a pair
func (r PriceResult) Prices() Sides {
	return Sides{OneFace: r.OneFacePrice, TwoFaces: r.TwoFacesPrice}
}

// LineItem is a record with the quantity ordered
type LineItem struct {
	Record   PricingRecord `json:"record"`
	Quantity int64         `json:"quantity"`
}

// ItemID returns the record id
func (l LineItem) ItemID() string {
	return l.Record.ID
}

// RelatedIDs returns the ids of related records
func (l LineItem) RelatedIDs() []string {
	return l.Record.RelatedPublicationIDs
}
