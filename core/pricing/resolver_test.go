package pricing

import (
	"testing"
)

func TestResolvePaperPrice(t *testing.T) {
	settings := testSettings()

	got, ok := ResolvePaperPrice("A5", settings)
	if !ok {
		t.Fatal("expected A5 to resolve")
	}
	if !got.OneFacePrice.Equal(money(30)) || !got.TwoFacesPrice.Equal(money(45)) {
		t.Errorf("A5 = %+v", got)
	}

	for _, id := range []string{"", "A3"} {
		if _, ok := ResolvePaperPrice(id, settings); ok {
			t.Errorf("paper %q should not resolve", id)
		}
	}
	if _, ok := ResolvePaperPrice("A4", nil); ok {
		t.Error("nil settings should resolve nothing")
	}
}

func TestCompatibleCoversKeepCatalogOrder(t *testing.T) {
	settings := testSettings()

	covers := CompatibleCovers("A4", settings)
	if len(covers) != 2 {
		t.Fatalf("expected 2 covers for A4, got %d", len(covers))
	}
	if covers[0].ID != "soft" || covers[1].ID != "hard" {
		t.Errorf("unexpected order: %s, %s", covers[0].ID, covers[1].ID)
	}
	if !covers[1].Price.OneFacePrice.Equal(money(25)) {
		t.Errorf("hard cover price = %s", covers[1].Price.OneFacePrice)
	}

	if got := CompatibleCovers("A5", settings); len(got) != 1 || got[0].ID != "soft" {
		t.Errorf("A5 covers = %+v", got)
	}
	if got := CompatibleCovers("A3", settings); len(got) != 0 {
		t.Errorf("A3 covers = %+v", got)
	}
}

func TestResolveCover(t *testing.T) {
	settings := testSettings()

	tests := []struct {
		name   string
		paper  string
		cover  string
		want   string
		wantOK bool
	}{
		{"default is first eligible", "A4", "", "soft", true},
		{"explicit eligible cover", "A4", "hard", "hard", true},
		{"explicit cover not offered", "A4", "spiral", "", false},
		{"explicit cover wrong paper", "A5", "hard", "", false},
		{"unknown cover", "A4", "leather", "", false},
		{"paper without covers", "A3", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCover(tt.paper, tt.cover, settings)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.want {
				t.Errorf("cover = %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestCoverWithoutPriceIsFree(t *testing.T) {
	settings := testSettings()
	settings.CoverPrices = settings.CoverPrices[1:]

	cover, ok := ResolveCover("A4", "soft", settings)
	if !ok {
		t.Fatal("soft cover should still resolve")
	}
	if !cover.Price.OneFacePrice.IsZero() || !cover.Price.TwoFacesPrice.IsZero() {
		t.Errorf("missing cover price should be zero, got %+v", cover.Price)
	}
}
