package models

// Product is the GraphQL view of a catalog item.
type Product struct {
	ID             int32    `json:"id"`
	Name           string   `json:"name"`
	Style          string   `json:"style"`
	Category       string   `json:"category"`
	BridalLook     string   `json:"bridalLook"`
	Price          float64  `json:"price"`
	PriceFormatted string   `json:"priceFormatted"`
	OriginalPrice  *float64 `json:"originalPrice,omitempty"`
	Image          string   `json:"image"`
	Sizes          []string `json:"sizes"`
	OnSale         bool     `json:"onSale"`
	DateAdded      string   `json:"dateAdded"`
}

// PageInfo mirrors the query engine's pagination state.
type PageInfo struct {
	PageSize    int32 `json:"pageSize"`
	CurrentPage int32 `json:"currentPage"`
	TotalPages  int32 `json:"totalPages"`
}

// ProductResult is one page of products plus pagination state.
type ProductResult struct {
	Items      []*Product `json:"items"`
	TotalCount int32      `json:"totalCount"`
	PageInfo   *PageInfo  `json:"pageInfo"`
}
