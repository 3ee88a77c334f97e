package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"carolinebride.GO/api"
	catalogPkg "carolinebride.GO/catalog"
	"carolinebride.GO/catalog/query"
	"carolinebride.GO/config"
	"carolinebride.GO/core/cache"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// listingTTL bounds staleness of cached listing pages, in seconds.
const listingTTL = 300

// ProductView is one rendered grid entry.
type ProductView struct {
	ID                     uint     `json:"id"`
	Name                   string   `json:"name"`
	Style                  string   `json:"style"`
	Category               string   `json:"category"`
	BridalLook             string   `json:"bridal_look"`
	Price                  float64  `json:"price"`
	PriceFormatted         string   `json:"price_formatted"`
	OriginalPrice          *float64 `json:"original_price,omitempty"`
	OriginalPriceFormatted string   `json:"original_price_formatted,omitempty"`
	Image                  string   `json:"image"`
	Sizes                  []string `json:"sizes"`
	OnSale                 bool     `json:"on_sale"`
	DateAdded              string   `json:"date_added"`
}

// ListingResponse is the catalog listing payload.
type ListingResponse struct {
	Items      []ProductView  `json:"items"`
	TotalCount int            `json:"total_count"`
	PageInfo   query.PageInfo `json:"page_info"`
}

func RegisterCatalogRoutes(apiGroup *echo.Group, _ *gorm.DB, cat *catalogPkg.Catalog) {
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/products — filter/sort/page query params per the shop UI
	g.GET("/products", func(c echo.Context) error {
		start := time.Now()
		key := "catalog:listing:" + c.QueryParams().Encode()

		if resp, ok := lookupCached(c, key); ok {
			c.Response().Header().Set("X-Cache", "HIT")
			return c.JSONBlob(http.StatusOK, resp)
		}

		state, sortKey, page := query.FromValues(c.QueryParams())
		result := query.Run(cat.Items(), state, sortKey, page)

		resp := ListingResponse{
			Items:      make([]ProductView, 0, len(result.Items)),
			TotalCount: result.TotalCount,
			PageInfo:   result.PageInfo,
		}
		for _, it := range result.Items {
			resp.Items = append(resp.Items, toView(it))
		}

		storeCached(c, key, resp)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, resp)
	})
}

func toView(it catalogPkg.Item) ProductView {
	v := ProductView{
		ID:             it.ID,
		Name:           it.Name,
		Style:          it.Style,
		Category:       it.Category,
		BridalLook:     it.BridalLook,
		Price:          it.Price,
		PriceFormatted: catalogPkg.FormatPrice(it.Price),
		Image:          config.AppConfig.MediaUrl + it.Image,
		Sizes:          it.Sizes,
		OnSale:         it.OnSale,
		DateAdded:      it.EffectiveDateAdded().Format("2006-01-02"),
	}
	if it.OnSale && it.OriginalPrice != nil {
		v.OriginalPrice = it.OriginalPrice
		v.OriginalPriceFormatted = catalogPkg.FormatPrice(*it.OriginalPrice)
	}
	return v
}

// lookupCached checks Redis first (when configured), then the in-process cache.
func lookupCached(c echo.Context, key string) ([]byte, bool) {
	if config.RedisClient != nil {
		if data, err := config.RedisClient.Get(c.Request().Context(), key).Bytes(); err == nil {
			return data, true
		}
		return nil, false
	}
	if v, ok := cache.GetInstance().Get(key); ok {
		if data, isBytes := v.([]byte); isBytes {
			return data, true
		}
	}
	return nil, false
}

func storeCached(c echo.Context, key string, resp ListingResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if config.RedisClient != nil {
		config.RedisClient.Set(c.Request().Context(), key, data, listingTTL*time.Second)
		return
	}
	cache.GetInstance().Set(key, data, listingTTL, []string{"catalog"})
}
