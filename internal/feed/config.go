package feed

import "slices"

// Sort modes accepted by Config.Sort. Anything else behaves like SortRecent.
const (
	SortRecent       = "recent"
	SortAlphabetical = "alphabetical"
	SortPopular      = "popular"
	SortTrending     = "trending"
)

const DefaultDateRange = "all"

// Config is the full set of user-selected narrowing and sorting criteria.
// It is treated as an immutable value: mutation helpers return a modified
// copy so two configs can be compared to decide a pagination reset.
type Config struct {
	Search       string
	Types        []string
	Licenses     []string
	VerifiedOnly bool
	DateRange    string
	Sort         string
	Tags         []string
	PriceMin     float64
	PriceMax     float64
}

func DefaultConfig() Config {
	return Config{
		DateRange: DefaultDateRange,
		Sort:      SortRecent,
		PriceMin:  0,
		PriceMax:  100,
	}
}

func (c Config) Equal(other Config) bool {
	return c.Search == other.Search &&
		slices.Equal(c.Types, other.Types) &&
		slices.Equal(c.Licenses, other.Licenses) &&
		c.VerifiedOnly == other.VerifiedOnly &&
		c.DateRange == other.DateRange &&
		c.Sort == other.Sort &&
		slices.Equal(c.Tags, other.Tags) &&
		c.PriceMin == other.PriceMin &&
		c.PriceMax == other.PriceMax
}

// ActiveCount reports how many narrowing criteria are in effect, for
// display next to the filter control. The price range never contributes.
func (c Config) ActiveCount() int {
	count := 0
	if c.Search != "" {
		count++
	}
	count += len(c.Types)
	count += len(c.Licenses)
	if c.VerifiedOnly {
		count++
	}
	if c.DateRange != DefaultDateRange {
		count++
	}
	if c.Sort != SortRecent {
		count++
	}
	count += len(c.Tags)
	return count
}

func (c Config) ClearSearch() Config {
	c.Search = ""
	return c
}

func (c Config) WithoutType(value string) Config {
	c.Types = removeValue(c.Types, value)
	return c
}

func (c Config) WithoutLicense(value string) Config {
	c.Licenses = removeValue(c.Licenses, value)
	return c
}

func (c Config) WithoutTag(value string) Config {
	c.Tags = removeValue(c.Tags, value)
	return c
}

func (c Config) ClearVerified() Config {
	c.VerifiedOnly = false
	return c
}

func removeValue(values []string, value string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
