package query

import (
	"net/url"

	"carolinebride.GO/catalog"
)

// Dimension names one of the two filterable item fields.
type Dimension string

const (
	DimensionCategory   Dimension = "category"
	DimensionBridalLook Dimension = "bridalLook"
)

// FilterState holds the selected values per dimension. Empty means match-all.
// Slices keep insertion order for stable chip rendering; membership is what
// matters for matching.
type FilterState struct {
	Category   []string
	BridalLook []string
}

// IsEmpty reports whether no constraint is active.
func (s FilterState) IsEmpty() bool {
	return len(s.Category) == 0 && len(s.BridalLook) == 0
}

// Matches applies the filter predicate: AND across dimensions, OR within.
func (s FilterState) Matches(it catalog.Item) bool {
	return matchDimension(s.Category, it.Category) && matchDimension(s.BridalLook, it.BridalLook)
}

func matchDimension(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	return contains(selected, value)
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// Toggle flips membership of value in the given dimension (symmetric
// difference). Any value is accepted; values matching no item simply yield
// zero results. Callers must reset the current page to 1 afterwards.
func Toggle(state FilterState, dim Dimension, value string) FilterState {
	switch dim {
	case DimensionCategory:
		state.Category = toggleValue(state.Category, value)
	case DimensionBridalLook:
		state.BridalLook = toggleValue(state.BridalLook, value)
	}
	return state
}

func toggleValue(values []string, v string) []string {
	for i, x := range values {
		if x == v {
			out := make([]string, 0, len(values)-1)
			out = append(out, values[:i]...)
			return append(out, values[i+1:]...)
		}
	}
	out := make([]string, len(values), len(values)+1)
	copy(out, values)
	return append(out, v)
}

// Alias query values expanding to a union of category field values. Neither
// "separates" nor "accessories" is itself a category on any item.
var (
	SeparatesCategories = []string{"tops", "skirts", "trousers", "jackets", "jumpsuits"}
	AccessoryCategories = []string{"veils", "headpieces", "jewelry", "shoes"}
)

// Derived is the result of mapping URL parameters to an initial browsing
// state. Sort is empty unless a quick filter forces one; the caller keeps its
// current sort key in that case.
type Derived struct {
	Filters FilterState
	Sort    SortKey
}

// DeriveInitialFilters maps URL query parameters to a fresh FilterState.
// It fully replaces any prior state; it is re-run whenever the URL changes.
//
// The category branches are mutually exclusive, first match wins:
//  1. featured=true        — no filters, sort forced to best-selling
//  2. category=separates   — expands to the separates category union
//  3. category=accessories — expands to the accessories category union
//  4. category=<other>     — singleton category filter
//
// The look parameters apply independently of the category branches: style is
// an alias for bridalLook, and bridalLook wins when both are present.
func DeriveInitialFilters(params url.Values) Derived {
	var d Derived

	switch {
	case params.Get("featured") == "true":
		d.Sort = SortBestSelling
	case params.Get("category") == "separates":
		d.Filters.Category = append([]string(nil), SeparatesCategories...)
	case params.Get("category") == "accessories":
		d.Filters.Category = append([]string(nil), AccessoryCategories...)
	case params.Get("category") != "":
		d.Filters.Category = []string{params.Get("category")}
	}

	if style := params.Get("style"); style != "" {
		d.Filters.BridalLook = []string{style}
	}
	if look := params.Get("bridalLook"); look != "" {
		d.Filters.BridalLook = []string{look}
	}

	return d
}
