package feed

import (
	"strings"

	"github.com/vtorres/timeline-cli/internal/registry"
)

// Apply narrows the full sorted list to the assets matching cfg and
// re-sorts the survivors according to cfg.Sort. The input slice is never
// mutated; with a default config the result is a copy in the same order.
func Apply(assets []registry.Asset, cfg Config) []registry.Asset {
	filtered := make([]registry.Asset, 0, len(assets))
	for _, a := range assets {
		if Matches(a, cfg) {
			filtered = append(filtered, a)
		}
	}
	sortAssets(filtered, cfg.Sort)
	return filtered
}

// Matches reports whether one asset survives every active filter field.
// Fields combine with AND; values within a field combine with OR. Empty
// or default fields never narrow. The date-range and price-range fields
// are part of the configuration surface but do not narrow yet.
func Matches(a registry.Asset, cfg Config) bool {
	if cfg.Search != "" && !matchesSearch(a, cfg.Search) {
		return false
	}
	if len(cfg.Types) > 0 && !containsString(cfg.Types, strings.ToLower(a.Type)) {
		return false
	}
	if len(cfg.Licenses) > 0 && !matchesLicense(a.LicenseType, cfg.Licenses) {
		return false
	}
	if cfg.VerifiedOnly && !a.Creator.Verified {
		return false
	}
	if len(cfg.Tags) > 0 && !matchesTags(a.Tags, cfg.Tags) {
		return false
	}
	return true
}

func matchesSearch(a registry.Asset, term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle) ||
		strings.Contains(strings.ToLower(a.Creator.Name), needle) ||
		strings.Contains(strings.ToLower(a.Tags), needle)
}

// LicenseSlug normalizes a license label for comparison: lower-cased with
// internal whitespace collapsed to single hyphens, so "Creative Commons"
// becomes "creative-commons".
func LicenseSlug(license string) string {
	return strings.Join(strings.Fields(strings.ToLower(license)), "-")
}

func matchesLicense(license string, selected []string) bool {
	slug := LicenseSlug(license)
	for _, want := range selected {
		if strings.Contains(slug, want) || strings.Contains(want, slug) {
			return true
		}
	}
	return false
}

func matchesTags(tags string, selected []string) bool {
	haystack := strings.ToLower(tags)
	for _, want := range selected {
		if strings.Contains(haystack, strings.ToLower(want)) {
			return true
		}
	}
	return false
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
