package feed

import (
	"sort"
	"strconv"
	"time"

	"github.com/vtorres/timeline-cli/internal/registry"
)

var whenLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseWhen(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

// OrderTime resolves the effective timeline position of an asset:
// registration date first, the generic timestamp as fallback, and zero
// when both are absent or unparsable.
func OrderTime(a registry.Asset) int64 {
	if ms, ok := parseWhen(a.RegistrationDate); ok {
		return ms
	}
	if ms, ok := parseWhen(a.Timestamp); ok {
		return ms
	}
	return 0
}

func tokenOrdinal(a registry.Asset) float64 {
	if v, err := strconv.ParseFloat(a.TokenID, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(a.ID, 64); err == nil {
		return v
	}
	return 0
}

// SortTimeline orders assets newest-first by effective time, breaking
// ties by numeric token id (larger first). The sort is stable, so assets
// equal on both keys keep their relative order.
func SortTimeline(assets []registry.Asset) {
	sort.SliceStable(assets, func(i, j int) bool {
		ti, tj := OrderTime(assets[i]), OrderTime(assets[j])
		if ti != tj {
			return ti > tj
		}
		return tokenOrdinal(assets[i]) > tokenOrdinal(assets[j])
	})
}
