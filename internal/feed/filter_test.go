package feed

import (
	"reflect"
	"testing"

	"github.com/vtorres/timeline-cli/internal/registry"
)

func sampleAssets() []registry.Asset {
	return []registry.Asset{
		{
			ID:               "1",
			Title:            "Morning Skyline",
			Description:      "A city skyline at dawn",
			Type:             "Image",
			Tags:             "city,photo",
			LicenseType:      "Creative Commons",
			Creator:          registry.Creator{Name: "Ana", Verified: true},
			RegistrationDate: "2026-03-01T00:00:00Z",
			Timestamp:        "2026-01-05T00:00:00Z",
		},
		{
			ID:               "2",
			Title:            "Quiet Forest",
			Description:      "Field recording",
			Type:             "Audio",
			Tags:             "nature,ambient",
			LicenseType:      "Commercial Use",
			Creator:          registry.Creator{Name: "Bram", Verified: false},
			RegistrationDate: "2026-02-01T00:00:00Z",
			Timestamp:        "2026-02-20T00:00:00Z",
		},
		{
			ID:               "3",
			Title:            "Alley Cat Sketch",
			Description:      "Ink drawing",
			Type:             "Image",
			Tags:             "art,animals",
			LicenseType:      "Creative Commons Attribution",
			Creator:          registry.Creator{Name: "Cleo", Verified: true},
			RegistrationDate: "2026-01-01T00:00:00Z",
			Timestamp:        "2026-03-10T00:00:00Z",
		},
	}
}

func idsOf(assets []registry.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.ID)
	}
	return out
}

func TestApply_DefaultConfigKeepsEverything(t *testing.T) {
	assets := sampleAssets()
	got := Apply(assets, DefaultConfig())
	if !reflect.DeepEqual(idsOf(got), []string{"1", "2", "3"}) {
		t.Fatalf("default config narrowed the list: %v", idsOf(got))
	}
}

func TestApply_IsPureAndDeterministic(t *testing.T) {
	assets := sampleAssets()
	cfg := DefaultConfig()
	cfg.Search = "cat"

	first := Apply(assets, cfg)
	second := Apply(assets, cfg)
	if !reflect.DeepEqual(idsOf(first), idsOf(second)) {
		t.Fatalf("same inputs produced different results: %v vs %v", idsOf(first), idsOf(second))
	}
	if !reflect.DeepEqual(idsOf(assets), []string{"1", "2", "3"}) {
		t.Fatalf("input slice was mutated: %v", idsOf(assets))
	}
}

func TestSearch_MatchesTagOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search = "ambient"

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"2"}) {
		t.Fatalf("expected tag-only match to include asset 2, got %v", idsOf(got))
	}
}

func TestSearch_MatchesCreatorCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search = "CLEO"

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"3"}) {
		t.Fatalf("expected creator match, got %v", idsOf(got))
	}
}

func TestTypes_FilterByLowercasedType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Types = []string{"image"}

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"1", "3"}) {
		t.Fatalf("expected image assets, got %v", idsOf(got))
	}
}

func TestLicense_SlugNormalization(t *testing.T) {
	asset := registry.Asset{LicenseType: "Creative Commons"}
	cfg := DefaultConfig()
	cfg.Licenses = []string{"creative-commons"}
	if !Matches(asset, cfg) {
		t.Fatal("expected slug-normalized license to match")
	}
}

func TestLicense_BidirectionalPartialMatch(t *testing.T) {
	asset := registry.Asset{LicenseType: "Creative Commons"}

	cfg := DefaultConfig()
	cfg.Licenses = []string{"creative"}
	if !Matches(asset, cfg) {
		t.Fatal("expected selection as substring of slug to match")
	}

	cfg.Licenses = []string{"creative-commons-attribution"}
	if !Matches(asset, cfg) {
		t.Fatal("expected slug as substring of selection to match")
	}

	cfg.Licenses = []string{"commercial-use"}
	if Matches(asset, cfg) {
		t.Fatal("expected unrelated license to be rejected")
	}
}

func TestVerifiedOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerifiedOnly = true

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"1", "3"}) {
		t.Fatalf("expected verified creators only, got %v", idsOf(got))
	}
}

func TestTags_SubstringAnyOf(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tags = []string{"Art", "missing"}

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"3"}) {
		t.Fatalf("expected case-insensitive tag match, got %v", idsOf(got))
	}
}

func TestFieldsCombineWithAND(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Types = []string{"image"}
	cfg.VerifiedOnly = true
	cfg.Search = "skyline"

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"1"}) {
		t.Fatalf("expected single AND match, got %v", idsOf(got))
	}
}

func TestDateRangeAndPriceRange_DoNotNarrow(t *testing.T) {
	base := Apply(sampleAssets(), DefaultConfig())

	cfg := DefaultConfig()
	cfg.DateRange = "week"
	cfg.PriceMin = 40
	cfg.PriceMax = 60
	got := Apply(sampleAssets(), cfg)

	if !reflect.DeepEqual(idsOf(base), idsOf(got)) {
		t.Fatalf("reserved fields altered results: %v vs %v", idsOf(base), idsOf(got))
	}
}

func TestSort_Alphabetical(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sort = SortAlphabetical

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"3", "1", "2"}) {
		t.Fatalf("unexpected alphabetical order: %v", idsOf(got))
	}
}

func TestSort_PopularUsesTimestamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sort = SortPopular

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"3", "2", "1"}) {
		t.Fatalf("unexpected popular order: %v", idsOf(got))
	}
}

func TestSort_TrendingUsesRegistrationDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sort = SortTrending

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"1", "2", "3"}) {
		t.Fatalf("unexpected trending order: %v", idsOf(got))
	}
}

func TestSort_UnrecognizedPreservesOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sort = "velocity"

	got := Apply(sampleAssets(), cfg)
	if !reflect.DeepEqual(idsOf(got), []string{"1", "2", "3"}) {
		t.Fatalf("unrecognized sort reordered the list: %v", idsOf(got))
	}
}
