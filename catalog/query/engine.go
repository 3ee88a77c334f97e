package query

import (
	"net/url"
	"strconv"

	"carolinebride.GO/catalog"
)

// DefaultPageSize is the shop grid page size.
const DefaultPageSize = 12

// PageInfo describes pagination control state for a result page.
type PageInfo struct {
	PageSize    int `json:"page_size"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Result is one visible page of the catalog plus its pagination state.
type Result struct {
	Items      []catalog.Item `json:"items"`
	TotalCount int            `json:"total_count"`
	PageInfo   PageInfo       `json:"page_info"`
}

// Filter returns the items matching the filter state, preserving catalog
// order. The output is always a subset of the input.
func Filter(items []catalog.Item, state FilterState) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if state.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate slices one page out of items. currentPage is clamped to
// [1, totalPages]; totalPages is never below 1, so an empty input yields a
// single empty page rather than an out-of-range slice.
func Paginate(items []catalog.Item, pageSize, currentPage int) ([]catalog.Item, PageInfo) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}
	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], PageInfo{PageSize: pageSize, CurrentPage: currentPage, TotalPages: totalPages}
}

// Run is the end-to-end pipeline: filter, sort, paginate. Pure and
// deterministic for identical inputs.
func Run(items []catalog.Item, state FilterState, key SortKey, currentPage int) Result {
	matched := Filter(items, state)
	sorted := Sort(matched, key)
	page, info := Paginate(sorted, DefaultPageSize, currentPage)
	return Result{Items: page, TotalCount: len(sorted), PageInfo: info}
}

// FromValues derives the full browsing state from URL query parameters:
// filters via DeriveInitialFilters, the sort key (an explicit sort parameter
// wins over a quick-filter forced sort), and the 1-indexed page.
func FromValues(params url.Values) (FilterState, SortKey, int) {
	d := DeriveInitialFilters(params)
	key := SortFeatured
	if d.Sort != "" {
		key = d.Sort
	}
	if s := params.Get("sort"); s != "" {
		key = ParseSortKey(s)
	}
	page := 1
	if p, err := strconv.Atoi(params.Get("page")); err == nil && p > 0 {
		page = p
	}
	return d.Filters, key, page
}
