// Package pricing resolves price table entries and computes single-item prices.
// Every function here is pure: settings are read, never written, and a
// lookup that fails contributes zero instead of returning an error.
package pricing

import (
	"copyshop-pricing/core/types"
)

// ResolvePaperPrice finds the per-100-pages rate for a paper type.
// An empty id or an unknown id resolves nothing.
func ResolvePaperPrice(paperTypeID string, settings *types.PriceSettings) (types.PriceEntry, bool) {
	if settings == nil || paperTypeID == "" {
		return types.PriceEntry{}, false
	}
	for _, entry := range settings.PaperPrices {
		if entry.ID == paperTypeID {
			return entry, true
		}
	}
	return types.PriceEntry{}, false
}

// resolveCoverPrice finds the flat price of a cover. Missing prices are zero.
func resolveCoverPrice(coverID string, settings *types.PriceSettings) types.PriceEntry {
	for _, entry := range settings.CoverPrices {
		if entry.ID == coverID {
			return entry
		}
	}
	return types.PriceEntry{ID: coverID}
}

// CompatibleCovers returns the covers that fit the paper type and are
// currently offered, in catalog order.
func CompatibleCovers(paperTypeID string, settings *types.PriceSettings) []types.ResolvedCover {
	if settings == nil {
		return nil
	}
	var covers []types.ResolvedCover
	for _, cover := range settings.Covers {
		if !cover.FitsPaper(paperTypeID) || !settings.IsCoverAvailable(cover.ID) {
			continue
		}
		covers = append(covers, types.ResolvedCover{
			CoverType: cover,
			Price:     resolveCoverPrice(cover.ID, settings),
		})
	}
	return covers
}

// ResolveCover picks the cover applied to a paper type.
// With an explicit cover id, that cover is returned only if it is compatible
// and available. Without one, the first eligible cover in catalog order is
// the default; the choice is positional, not ranked.
func ResolveCover(paperTypeID, coverTypeID string, settings *types.PriceSettings) (types.ResolvedCover, bool) {
	covers := CompatibleCovers(paperTypeID, settings)
	if len(covers) == 0 {
		return types.ResolvedCover{}, false
	}
	if coverTypeID == "" {
		return covers[0], true
	}
	for _, cover := range covers {
		if cover.ID == coverTypeID {
			return cover, true
		}
	}
	return types.ResolvedCover{}, false
}
