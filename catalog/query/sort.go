package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"carolinebride.GO/catalog"
)

// SortKey is one of the fixed sort orders offered by the shop toolbar.
type SortKey string

const (
	SortFeatured    SortKey = "featured"
	SortBestSelling SortKey = "best-selling"
	SortNameAsc     SortKey = "name-asc"
	SortNameDesc    SortKey = "name-desc"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortDateNew     SortKey = "date-new"
	SortDateOld     SortKey = "date-old"
)

// ParseSortKey maps a raw value to a SortKey; unrecognized values fall back
// to featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortBestSelling, SortNameAsc, SortNameDesc, SortPriceLow, SortPriceHigh, SortDateNew, SortDateOld:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// featuredScore is a fixed merchandising weighting: low-id items and
// sale/high-price items rank higher. The constants are policy, not tunables.
func featuredScore(it catalog.Item) int {
	score := 50 - int(it.ID)
	if it.OnSale {
		score += 20
	}
	if it.Price > 1000 {
		score += 10
	}
	return score
}

// Sort returns the items ordered by key. All orders are stable (ties keep
// the input's relative order) and the input slice is never mutated.
func Sort(items []catalog.Item, key SortKey) []catalog.Item {
	sorted := make([]catalog.Item, len(items))
	copy(sorted, items)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortNameAsc:
		cl := collate.New(language.AmericanEnglish)
		sort.SliceStable(sorted, func(i, j int) bool { return cl.CompareString(sorted[i].Name, sorted[j].Name) < 0 })
	case SortNameDesc:
		cl := collate.New(language.AmericanEnglish)
		sort.SliceStable(sorted, func(i, j int) bool { return cl.CompareString(sorted[i].Name, sorted[j].Name) > 0 })
	case SortDateNew:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectiveDateAdded().After(sorted[j].EffectiveDateAdded())
		})
	case SortDateOld:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectiveDateAdded().Before(sorted[j].EffectiveDateAdded())
		})
	case SortBestSelling:
		// No real sales data: higher id stands in for "more recently popular".
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })
	default:
		sort.SliceStable(sorted, func(i, j int) bool { return featuredScore(sorted[i]) > featuredScore(sorted[j]) })
	}
	return sorted
}
