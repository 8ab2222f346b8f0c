package feed

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vtorres/timeline-cli/internal/registry"
)

var titleCollator = collate.New(language.English, collate.Loose)

func sortAssets(assets []registry.Asset, mode string) {
	switch mode {
	case SortAlphabetical:
		sort.SliceStable(assets, func(i, j int) bool {
			return titleCollator.CompareString(assets[i].Title, assets[j].Title) < 0
		})
	case SortPopular:
		sortByWhenDesc(assets, func(a registry.Asset) string { return a.Timestamp })
	case SortTrending:
		sortByWhenDesc(assets, func(a registry.Asset) string { return a.RegistrationDate })
	default:
		// "recent" and anything unrecognized keep the incoming
		// timeline-descending order.
	}
}

func sortByWhenDesc(assets []registry.Asset, field func(registry.Asset) string) {
	sort.SliceStable(assets, func(i, j int) bool {
		ti, _ := parseWhen(field(assets[i]))
		tj, _ := parseWhen(field(assets[j]))
		return ti > tj
	})
}
