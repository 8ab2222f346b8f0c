package feed

import (
	"reflect"
	"testing"
)

func TestActiveCount(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ActiveCount(); got != 0 {
		t.Fatalf("default config should count 0, got %d", got)
	}

	cfg.Search = "cat"
	cfg.Tags = []string{"art", "photo"}
	if got := cfg.ActiveCount(); got != 3 {
		t.Fatalf("expected 3 active filters, got %d", got)
	}

	cfg.Types = []string{"image", "audio"}
	cfg.VerifiedOnly = true
	cfg.DateRange = "month"
	cfg.Sort = SortPopular
	if got := cfg.ActiveCount(); got != 8 {
		t.Fatalf("expected 8 active filters, got %d", got)
	}

	// The price range never contributes.
	cfg.PriceMin = 20
	cfg.PriceMax = 40
	if got := cfg.ActiveCount(); got != 8 {
		t.Fatalf("price range changed the count: %d", got)
	}
}

func TestConfigEqual(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	if !a.Equal(b) {
		t.Fatal("two default configs should be equal")
	}

	b.Tags = []string{"art"}
	if a.Equal(b) {
		t.Fatal("tag selection should break equality")
	}

	b = DefaultConfig()
	b.PriceMax = 99
	if a.Equal(b) {
		t.Fatal("price range is part of the configuration identity")
	}
}

func TestRemovalOps_TouchOnlyTheirField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search = "cat"
	cfg.Types = []string{"image", "audio", "video"}
	cfg.Licenses = []string{"creative-commons"}
	cfg.Tags = []string{"art", "photo"}
	cfg.VerifiedOnly = true

	got := cfg.WithoutType("audio")
	if !reflect.DeepEqual(got.Types, []string{"image", "video"}) {
		t.Fatalf("unexpected types after removal: %v", got.Types)
	}
	if got.Search != "cat" || !got.VerifiedOnly ||
		!reflect.DeepEqual(got.Licenses, cfg.Licenses) ||
		!reflect.DeepEqual(got.Tags, cfg.Tags) {
		t.Fatalf("other fields changed: %+v", got)
	}

	if got := cfg.ClearSearch(); got.Search != "" || len(got.Types) != 3 {
		t.Fatalf("clear search touched more than its field: %+v", got)
	}
	if got := cfg.ClearVerified(); got.VerifiedOnly || got.Search != "cat" {
		t.Fatalf("clear verified touched more than its field: %+v", got)
	}
	if got := cfg.WithoutLicense("creative-commons"); got.Licenses != nil {
		t.Fatalf("expected empty licenses, got %v", got.Licenses)
	}
	if got := cfg.WithoutTag("art"); !reflect.DeepEqual(got.Tags, []string{"photo"}) {
		t.Fatalf("unexpected tags after removal: %v", got.Tags)
	}

	// The receiver is a value; the original is untouched.
	if len(cfg.Types) != 3 || cfg.Search != "cat" {
		t.Fatalf("original config mutated: %+v", cfg)
	}
}

func TestRemovalOps_UnknownValueIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Types = []string{"image"}
	got := cfg.WithoutType("audio")
	if !got.Equal(cfg) {
		t.Fatalf("removing an absent value changed the config: %+v", got)
	}
}
