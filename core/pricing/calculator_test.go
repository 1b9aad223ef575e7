package pricing

import (
	"testing"

	"copyshop-pricing/core/types"
)

func TestCalculatePriceA4Scenario(t *testing.T) {
	settings := &types.PriceSettings{
		PaperPrices: []types.PriceEntry{entry("A4", 50, 80)},
	}
	record := types.PricingRecord{ID: "p1", Pages: 200, PaperTypeID: "A4", Coverless: true}

	got := CalculatePrice(record, settings)
	if !got.OneFacePrice.Equal(money(100)) {
		t.Errorf("one face = %s, want 100", got.OneFacePrice)
	}
	if !got.TwoFacesPrice.Equal(money(160)) {
		t.Errorf("two faces = %s, want 160", got.TwoFacesPrice)
	}
	if got.ResolvedCover != nil {
		t.Errorf("coverless record resolved cover %s", got.ResolvedCover.ID)
	}
	if !got.PaperPriceFound {
		t.Error("paper price should be found")
	}
}

func TestCalculatePriceRoundsToStoreStep(t *testing.T) {
	settings := &types.PriceSettings{
		PaperPrices: []types.PriceEntry{entry("A4", 50, 80)},
		RoundTo:     money(7),
	}
	record := types.PricingRecord{Pages: 200, PaperTypeID: "A4", Coverless: true, DoRound: true}

	got := CalculatePrice(record, settings)
	if !got.TwoFacesPrice.Equal(money(161)) {
		t.Errorf("two faces = %s, want 161", got.TwoFacesPrice)
	}
	if !got.OneFacePrice.Equal(money(105)) {
		t.Errorf("one face = %s, want 105", got.OneFacePrice)
	}
	if !got.DoRound || !got.RoundTo.Equal(money(7)) {
		t.Errorf("DoRound = %v, RoundTo = %s", got.DoRound, got.RoundTo)
	}
}

func TestCalculatePriceCeilsToWholeUnitsWithoutRounding(t *testing.T) {
	settings := &types.PriceSettings{
		PaperPrices: []types.PriceEntry{entry("A4", 7, 9)},
		RoundTo:     money(10),
	}
	record := types.PricingRecord{Pages: 33, PaperTypeID: "A4", Coverless: true}

	// 7 * 33 / 100 = 2.31, 9 * 33 / 100 = 2.97
	got := CalculatePrice(record, settings)
	if !got.OneFacePrice.Equal(money(3)) || !got.TwoFacesPrice.Equal(money(3)) {
		t.Errorf("got %s / %s, want 3 / 3", got.OneFacePrice, got.TwoFacesPrice)
	}
	if !got.RoundTo.Equal(money(1)) {
		t.Errorf("RoundTo = %s, want 1", got.RoundTo)
	}
}

func TestCalculatePriceAddsCover(t *testing.T) {
	settings := testSettings()

	tests := []struct {
		name      string
		record    types.PricingRecord
		wantOne   int64
		wantTwo   int64
		wantCover string
	}{
		{
			name:      "default cover one-face price on both sides",
			record:    types.PricingRecord{Pages: 100, PaperTypeID: "A4"},
			wantOne:   60,
			wantTwo:   90,
			wantCover: "soft",
		},
		{
			name:      "two-faces cover price",
			record:    types.PricingRecord{Pages: 100, PaperTypeID: "A4", TwoFacesCover: true},
			wantOne:   65,
			wantTwo:   95,
			wantCover: "soft",
		},
		{
			name:      "explicit cover",
			record:    types.PricingRecord{Pages: 100, PaperTypeID: "A4", CoverTypeID: "hard"},
			wantOne:   75,
			wantTwo:   105,
			wantCover: "hard",
		},
		{
			name:    "unavailable cover adds nothing",
			record:  types.PricingRecord{Pages: 100, PaperTypeID: "A4", CoverTypeID: "spiral"},
			wantOne: 50,
			wantTwo: 80,
		},
		{
			name:    "coverless ignores cover id",
			record:  types.PricingRecord{Pages: 100, PaperTypeID: "A4", CoverTypeID: "hard", Coverless: true},
			wantOne: 50,
			wantTwo: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.record, settings)
			if !got.OneFacePrice.Equal(money(tt.wantOne)) || !got.TwoFacesPrice.Equal(money(tt.wantTwo)) {
				t.Errorf("got %s / %s, want %d / %d", got.OneFacePrice, got.TwoFacesPrice, tt.wantOne, tt.wantTwo)
			}
			switch {
			case tt.wantCover == "" && got.ResolvedCover != nil:
				t.Errorf("unexpected cover %s", got.ResolvedCover.ID)
			case tt.wantCover != "" && (got.ResolvedCover == nil || got.ResolvedCover.ID != tt.wantCover):
				t.Errorf("cover = %v, want %s", got.ResolvedCover, tt.wantCover)
			}
		})
	}
}

func TestCalculatePriceDeltaAfterRounding(t *testing.T) {
	settings := &types.PriceSettings{
		PaperPrices: []types.PriceEntry{entry("A4", 50, 80)},
		RoundTo:     money(7),
	}
	record := types.PricingRecord{
		Pages:       200,
		PaperTypeID: "A4",
		Coverless:   true,
		DoRound:     true,
		ChangePrice: types.NewSides(3, 3),
	}

	// ceil(160/7)*7 + 3 = 164; rounding after the delta would give 168
	got := CalculatePrice(record, settings)
	if !got.TwoFacesPrice.Equal(money(164)) {
		t.Errorf("two faces = %s, want 164", got.TwoFacesPrice)
	}
	// ceil(100/7)*7 + 3 = 108
	if !got.OneFacePrice.Equal(money(108)) {
		t.Errorf("one face = %s, want 108", got.OneFacePrice)
	}
}

func TestCalculatePriceZeroPages(t *testing.T) {
	settings := testSettings()
	deltas := []types.Sides{
		{},
		types.NewSides(12, 20),
		types.NewSides(-4, 0),
		{OneFace: amount("2.5"), TwoFaces: amount("0.75")},
	}

	for _, delta := range deltas {
		for _, doRound := range []bool{false, true} {
			record := types.PricingRecord{
				PaperTypeID: "A4",
				Coverless:   true,
				DoRound:     doRound,
				ChangePrice: delta,
			}
			got := CalculatePrice(record, settings)
			if !got.OneFacePrice.Equal(delta.OneFace) || !got.TwoFacesPrice.Equal(delta.TwoFaces) {
				t.Errorf("round=%v delta=%+v: got %s / %s", doRound, delta, got.OneFacePrice, got.TwoFacesPrice)
			}
		}
	}
}

func TestCalculatePriceIsIdempotent(t *testing.T) {
	settings := testSettings()
	record := types.PricingRecord{
		Pages:       137,
		PaperTypeID: "A5",
		DoRound:     true,
		ChangePrice: types.NewSides(1, 2),
	}

	first := CalculatePrice(record, settings)
	second := CalculatePrice(record, settings)
	if !first.Prices().Equal(second.Prices()) {
		t.Errorf("results differ: %+v vs %+v", first.Prices(), second.Prices())
	}
	if first.ResolvedCover.ID != second.ResolvedCover.ID {
		t.Errorf("covers differ: %s vs %s", first.ResolvedCover.ID, second.ResolvedCover.ID)
	}
}

func TestCalculatePriceMissingPaper(t *testing.T) {
	settings := testSettings()

	for _, paper := range []string{"", "A3"} {
		record := types.PricingRecord{Pages: 100, PaperTypeID: paper, Coverless: true, ChangePrice: types.NewSides(2, 2)}
		got := CalculatePrice(record, settings)
		if got.PaperPriceFound {
			t.Errorf("paper %q: PaperPriceFound should be false", paper)
		}
		if !got.Prices().Equal(types.NewSides(2, 2)) {
			t.Errorf("paper %q: got %+v, want the delta only", paper, got.Prices())
		}
	}

	got := CalculatePrice(types.PricingRecord{Pages: 100, PaperTypeID: "A4"}, nil)
	if !got.Prices().IsZero() {
		t.Errorf("nil settings should price at zero, got %+v", got.Prices())
	}
}

func TestCalculatePriceOverrides(t *testing.T) {
	settings := testSettings()
	record := types.PricingRecord{Pages: 100, PaperTypeID: "A4", CoverTypeID: "hard"}

	got := CalculatePrice(record, settings, WithPaperType("A5"))
	// hard does not fit A5, so only the A5 print price remains
	if !got.Prices().Equal(types.NewSides(30, 45)) {
		t.Errorf("A5 override = %+v", got.Prices())
	}

	got = CalculatePrice(record, settings, WithCover("soft"))
	if !got.Prices().Equal(types.NewSides(60, 90)) {
		t.Errorf("soft override = %+v", got.Prices())
	}
	if record.CoverTypeID != "hard" {
		t.Error("override must not modify the record")
	}
}

func TestRawPriceBreakdown(t *testing.T) {
	settings := testSettings()
	record := types.PricingRecord{Pages: 150, PaperTypeID: "A4", CoverTypeID: "leather", DoRound: true}

	b := RawPrice(record, settings)
	if !b.Print.Equal(types.NewSides(75, 120)) {
		t.Errorf("print = %+v", b.Print)
	}
	if !b.CoverMissing {
		t.Error("unknown cover should be reported missing")
	}
	if !b.CoverPrice.IsZero() || !b.Combined.Equal(b.Print) {
		t.Errorf("combined = %+v", b.Combined)
	}
}

func TestCoverOptions(t *testing.T) {
	settings := testSettings()
	record := types.PricingRecord{Pages: 100, PaperTypeID: "A4"}

	options := CoverOptions(record, settings)
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}

	want := []struct {
		label string
		price types.Sides
	}{
		{"no cover", types.NewSides(50, 80)},
		{"Soft cover", types.NewSides(60, 90)},
		{"Hard cover", types.NewSides(75, 105)},
	}
	for i, w := range want {
		if options[i].Label() != w.label {
			t.Errorf("option %d label = %q, want %q", i, options[i].Label(), w.label)
		}
		if !options[i].Price.Prices().Equal(w.price) {
			t.Errorf("option %d price = %+v, want %+v", i, options[i].Price.Prices(), w.price)
		}
	}
}
