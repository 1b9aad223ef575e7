// Package pricebook loads price settings from HCL and JSON price book files.
package pricebook

import (
	"copyshop-pricing/core/types"
)

// document is the format-neutral shape of a price book file
type document struct {
	Settings settingsBlock `json:"settings"`
	Papers   []paperBlock  `json:"papers"`
	Covers   []coverBlock  `json:"covers"`
}

type settingsBlock struct {
	Currency     string      `json:"currency"`
	RoundTo      types.Money `json:"round_to"`
	DefaultPaper string      `json:"default_paper"`
}

type paperBlock struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	OneFacePrice  types.Money `json:"one_face_price"`
	TwoFacesPrice types.Money `json:"two_faces_price"`
}

type coverBlock struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	CompatiblePaper []string    `json:"compatible_paper"`
	OneFacePrice    types.Money `json:"one_face_price"`
	TwoFacesPrice   types.Money `json:"two_faces_price"`

	// Available defaults to true when omitted
	Available *bool `json:"available,omitempty"`
}

func (c coverBlock) isAvailable() bool {
	return c.Available == nil || *c.Available
}

// settings converts the document into the core's price settings.
// Catalog order is the order of blocks in the file.
func (d *document) settings() *types.PriceSettings {
	s := &types.PriceSettings{
		Currency:           types.Currency(d.Settings.Currency),
		RoundTo:            d.Settings.RoundTo,
		DefaultPaperTypeID: d.Settings.DefaultPaper,
	}
	if s.Currency == "" {
		s.Currency = types.CurrencyEGP
	}

	for _, p := range d.Papers {
		s.PaperTypes = append(s.PaperTypes, types.PaperType{ID: p.ID, Name: p.Name})
		s.PaperPrices = append(s.PaperPrices, types.PriceEntry{
			ID:            p.ID,
			OneFacePrice:  p.OneFacePrice,
			TwoFacesPrice: p.TwoFacesPrice,
		})
	}

	for _, c := range d.Covers {
		s.Covers = append(s.Covers, types.CoverType{
			ID:                   c.ID,
			Name:                 c.Name,
			CompatiblePaperTypes: c.CompatiblePaper,
		})
		s.CoverPrices = append(s.CoverPrices, types.PriceEntry{
			ID:            c.ID,
			OneFacePrice:  c.OneFacePrice,
			TwoFacesPrice: c.TwoFacesPrice,
		})
		if c.isAvailable() {
			s.AvailableCoverIDs = append(s.AvailableCoverIDs, c.ID)
		}
	}
	return s
}
