package graphqlserver

import (
	"net/http"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"carolinebride.GO/catalog"
	"carolinebride.GO/catalog/query"
	"carolinebride.GO/config"
	"carolinebride.GO/graphql"
	gqlmodels "carolinebride.GO/graphql/models"
)

// RootResolver is the root for graphql-go. The catalog is injected once at
// schema build time; it is immutable, so resolvers share it freely.
type RootResolver struct {
	Catalog *catalog.Catalog
}

// NewSchema parses the schema (base + extensions) against the root resolver.
func NewSchema(cat *catalog.Catalog) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Catalog: cat}, gql.UseFieldResolvers())
}

// Handler wraps a schema in the standard relay HTTP handler.
func Handler(schema *gql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Category    *[]string
	BridalLook  *[]string
	Style       *string
	Featured    *bool
	Sort        *string
	PageSize    *int32
	CurrentPage *int32
}

func (r *RootResolver) Products(args ProductsArgs) *gqlmodels.ProductResult {
	var state query.FilterState
	if args.Featured != nil && *args.Featured {
		// Quick filter: no constraints, forced best-selling sort
		result := runQuery(r.Catalog, state, query.SortBestSelling, args.PageSize, args.CurrentPage)
		return result
	}
	if args.Category != nil {
		state.Category = expandCategories(*args.Category)
	}
	if args.Style != nil && *args.Style != "" {
		state.BridalLook = []string{*args.Style}
	}
	if args.BridalLook != nil && len(*args.BridalLook) > 0 {
		state.BridalLook = *args.BridalLook
	}
	key := query.SortFeatured
	if args.Sort != nil && *args.Sort != "" {
		key = query.ParseSortKey(*args.Sort)
	}
	return runQuery(r.Catalog, state, key, args.PageSize, args.CurrentPage)
}

// expandCategories resolves the separates/accessories alias values into their
// underlying category unions, keeping plain values as-is.
func expandCategories(values []string) []string {
	var out []string
	for _, v := range values {
		switch v {
		case "separates":
			out = append(out, query.SeparatesCategories...)
		case "accessories":
			out = append(out, query.AccessoryCategories...)
		default:
			out = append(out, v)
		}
	}
	return out
}

func runQuery(cat *catalog.Catalog, state query.FilterState, key query.SortKey, pageSize, currentPage *int32) *gqlmodels.ProductResult {
	page := 1
	if currentPage != nil && *currentPage > 0 {
		page = int(*currentPage)
	}
	size := query.DefaultPageSize
	if pageSize != nil && *pageSize > 0 {
		size = int(*pageSize)
	}

	matched := query.Filter(cat.Items(), state)
	sorted := query.Sort(matched, key)
	items, info := query.Paginate(sorted, size, page)

	products := make([]*gqlmodels.Product, 0, len(items))
	for _, it := range items {
		products = append(products, toProduct(it))
	}
	return &gqlmodels.ProductResult{
		Items:      products,
		TotalCount: int32(len(sorted)),
		PageInfo: &gqlmodels.PageInfo{
			PageSize:    int32(info.PageSize),
			CurrentPage: int32(info.CurrentPage),
			TotalPages:  int32(info.TotalPages),
		},
	}
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID int32
}

func (r *RootResolver) Product(args ProductArgs) *gqlmodels.Product {
	it, ok := r.Catalog.ItemByID(uint(args.ID))
	if !ok {
		return nil
	}
	return toProduct(it)
}

func (r *RootResolver) Categories() []string {
	return r.Catalog.Categories()
}

func (r *RootResolver) BridalLooks() []string {
	return r.Catalog.BridalLooks()
}

func toProduct(it catalog.Item) *gqlmodels.Product {
	p := &gqlmodels.Product{
		ID:             int32(it.ID),
		Name:           it.Name,
		Style:          it.Style,
		Category:       it.Category,
		BridalLook:     it.BridalLook,
		Price:          it.Price,
		PriceFormatted: catalog.FormatPrice(it.Price),
		Image:          config.AppConfig.MediaUrl + it.Image,
		Sizes:          it.Sizes,
		OnSale:         it.OnSale,
		DateAdded:      it.EffectiveDateAdded().Format("2006-01-02"),
	}
	if it.OnSale {
		p.OriginalPrice = it.OriginalPrice
	}
	return p
}
