package query

import (
	"net/url"
	"testing"

	"carolinebride.GO/catalog"
)

func liveItems(t *testing.T) []catalog.Item {
	t.Helper()
	cat, err := catalog.Load("../../data/catalog.json")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat.Items()
}

func TestPaginate(t *testing.T) {
	items := make([]catalog.Item, 30)
	for i := range items {
		items[i] = catalog.Item{ID: uint(i + 1)}
	}

	page, info := Paginate(items, 12, 1)
	if len(page) != 12 || info.TotalPages != 3 || info.CurrentPage != 1 {
		t.Errorf("page1: len=%d info=%+v", len(page), info)
	}

	page, info = Paginate(items, 12, 3)
	if len(page) != 6 || page[0].ID != 25 {
		t.Errorf("page3: len=%d first=%d", len(page), page[0].ID)
	}

	// Out-of-range pages clamp instead of erroring.
	_, info = Paginate(items, 12, 99)
	if info.CurrentPage != 3 {
		t.Errorf("page 99 clamped to %d, want 3", info.CurrentPage)
	}
	_, info = Paginate(items, 12, 0)
	if info.CurrentPage != 1 {
		t.Errorf("page 0 clamped to %d, want 1", info.CurrentPage)
	}

	// Empty input yields a single empty page.
	page, info = Paginate(nil, 12, 5)
	if len(page) != 0 || info.TotalPages != 1 || info.CurrentPage != 1 {
		t.Errorf("empty input: len=%d info=%+v", len(page), info)
	}

	// Non-positive page size falls back to the default.
	_, info = Paginate(items, 0, 1)
	if info.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", info.PageSize, DefaultPageSize)
	}

	// Exact multiple: no phantom extra page.
	_, info = Paginate(items[:24], 12, 1)
	if info.TotalPages != 2 {
		t.Errorf("24 items / 12 = %d pages, want 2", info.TotalPages)
	}
}

func TestFromValues(t *testing.T) {
	params, _ := url.ParseQuery("featured=true")
	_, key, page := FromValues(params)
	if key != SortBestSelling || page != 1 {
		t.Errorf("featured landing: key=%q page=%d", key, page)
	}

	// An explicit sort parameter wins over the quick-filter forced sort.
	params, _ = url.ParseQuery("featured=true&sort=price-low")
	_, key, _ = FromValues(params)
	if key != SortPriceLow {
		t.Errorf("explicit sort should win, got %q", key)
	}

	params, _ = url.ParseQuery("category=gowns&sort=bogus&page=3")
	state, key, page := FromValues(params)
	if len(state.Category) != 1 || state.Category[0] != "gowns" {
		t.Errorf("state = %+v", state)
	}
	if key != SortFeatured {
		t.Errorf("bogus sort should fall back to featured, got %q", key)
	}
	if page != 3 {
		t.Errorf("page = %d, want 3", page)
	}

	params, _ = url.ParseQuery("page=-2")
	_, _, page = FromValues(params)
	if page != 1 {
		t.Errorf("negative page = %d, want 1", page)
	}
}

func TestRun_FullCatalogFeatured(t *testing.T) {
	items := liveItems(t)

	res := Run(items, FilterState{}, SortFeatured, 1)
	if res.TotalCount != 61 {
		t.Fatalf("TotalCount = %d, want 61", res.TotalCount)
	}
	if res.PageInfo.TotalPages != 6 {
		t.Errorf("TotalPages = %d, want 6", res.PageInfo.TotalPages)
	}
	// The sale item (15) tops the featured order; score ties resolve by
	// catalog position.
	if got := ids(res.Items); !equalIDs(got, 15, 1, 2, 3, 13, 4, 5, 6, 7, 8, 9, 10) {
		t.Errorf("featured page 1 ids = %v", got)
	}

	res = Run(items, FilterState{}, SortFeatured, 2)
	if got := ids(res.Items)[:2]; !equalIDs(got, 20, 11) {
		t.Errorf("featured page 2 starts %v, want [20 11]", got)
	}

	// Last page holds the remainder.
	res = Run(items, FilterState{}, SortFeatured, 6)
	if len(res.Items) != 1 {
		t.Errorf("page 6 len = %d, want 1", len(res.Items))
	}

	// Beyond-last clamps to last.
	res = Run(items, FilterState{}, SortFeatured, 99)
	if res.PageInfo.CurrentPage != 6 {
		t.Errorf("page 99 clamped to %d, want 6", res.PageInfo.CurrentPage)
	}
}

func TestRun_GownsPriceLow(t *testing.T) {
	items := liveItems(t)
	state := FilterState{Category: []string{"gowns"}}

	res := Run(items, state, SortPriceLow, 1)
	if res.TotalCount != 8 {
		t.Fatalf("TotalCount = %d, want 8", res.TotalCount)
	}
	if res.PageInfo.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", res.PageInfo.TotalPages)
	}
	if got := ids(res.Items); !equalIDs(got, 57, 55, 20, 23, 21, 24, 22, 61) {
		t.Errorf("gowns price-low ids = %v", got)
	}
}

func TestRun_BohoNameAsc(t *testing.T) {
	items := liveItems(t)
	state := FilterState{BridalLook: []string{"boho"}}

	res := Run(items, state, SortNameAsc, 1)
	if res.TotalCount != 8 {
		t.Fatalf("TotalCount = %d, want 8", res.TotalCount)
	}
	if got := ids(res.Items); !equalIDs(got, 26, 38, 52, 29, 16, 47, 42, 32) {
		t.Errorf("boho name-asc ids = %v", got)
	}
}

func TestRun_SeparatesAlias(t *testing.T) {
	items := liveItems(t)
	params, _ := url.ParseQuery("category=separates")
	state, key, page := FromValues(params)

	res := Run(items, state, key, page)
	if res.TotalCount != 33 {
		t.Errorf("separates TotalCount = %d, want 33", res.TotalCount)
	}
	if res.PageInfo.TotalPages != 3 {
		t.Errorf("separates TotalPages = %d, want 3", res.PageInfo.TotalPages)
	}

	params, _ = url.ParseQuery("category=accessories")
	state, key, page = FromValues(params)
	res = Run(items, state, key, page)
	if res.TotalCount != 20 {
		t.Errorf("accessories TotalCount = %d, want 20", res.TotalCount)
	}
}

func TestRun_NoMatches(t *testing.T) {
	items := liveItems(t)
	state := FilterState{Category: []string{"gowns"}, BridalLook: []string{"no-such-look"}}

	res := Run(items, state, SortFeatured, 1)
	if res.TotalCount != 0 || len(res.Items) != 0 {
		t.Errorf("expected empty result, got %d items", res.TotalCount)
	}
	if res.PageInfo.TotalPages != 1 || res.PageInfo.CurrentPage != 1 {
		t.Errorf("empty result PageInfo = %+v", res.PageInfo)
	}
}

func TestRun_Deterministic(t *testing.T) {
	items := liveItems(t)
	a := Run(items, FilterState{Category: []string{"veils"}}, SortDateNew, 1)
	b := Run(items, FilterState{Category: []string{"veils"}}, SortDateNew, 1)
	if got, want := ids(a.Items), ids(b.Items); !equalIDs(got, want...) {
		t.Errorf("identical queries disagreed: %v vs %v", got, want)
	}
}
