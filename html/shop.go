package html

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"carolinebride.GO/catalog"
	"carolinebride.GO/catalog/query"
	"carolinebride.GO/config"
)

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// ShopItemView is one grid card on the rendered shop page.
type ShopItemView struct {
	ID                     uint
	Name                   string
	Style                  string
	PriceFormatted         string
	OriginalPriceFormatted string
	Image                  string
	Sizes                  []string
	OnSale                 bool
}

// RegisterShopHTMLRoutes registers the server-rendered shop grid.
func RegisterShopHTMLRoutes(e *echo.Echo, cat *catalog.Catalog) {
	e.GET("/shop", func(c echo.Context) error {
		state, sortKey, page := query.FromValues(c.QueryParams())
		result := query.Run(cat.Items(), state, sortKey, page)

		items := make([]ShopItemView, 0, len(result.Items))
		for _, it := range result.Items {
			v := ShopItemView{
				ID:             it.ID,
				Name:           it.Name,
				Style:          it.Style,
				PriceFormatted: catalog.FormatPrice(it.Price),
				Image:          config.AppConfig.MediaUrl + it.Image,
				Sizes:          it.Sizes,
				OnSale:         it.OnSale,
			}
			if it.OnSale && it.OriginalPrice != nil {
				v.OriginalPriceFormatted = catalog.FormatPrice(*it.OriginalPrice)
			}
			items = append(items, v)
		}

		pages := make([]int, result.PageInfo.TotalPages)
		for i := range pages {
			pages[i] = i + 1
		}

		return c.Render(http.StatusOK, "shop.html", map[string]interface{}{
			"Title":       pageTitle(c),
			"Items":       items,
			"TotalCount":  result.TotalCount,
			"CurrentPage": result.PageInfo.CurrentPage,
			"TotalPages":  result.PageInfo.TotalPages,
			"Pages":       pages,
			"Sort":        string(sortKey),
			"Filters":     state,
		})
	})
}

// pageTitle picks the header for the shop page from the landing parameters.
func pageTitle(c echo.Context) string {
	switch {
	case c.QueryParam("featured") == "true":
		return "Our Favourites"
	case c.QueryParam("category") == "separates":
		return "Bridal Separates"
	case c.QueryParam("category") == "accessories":
		return "Bridal Accessories"
	case c.QueryParam("category") == "gowns":
		return "Wedding Gowns"
	case c.QueryParam("category") == "jumpsuits":
		return "Bridal Jumpsuits"
	}
	if style := c.QueryParam("style"); style != "" {
		if label, ok := collectionTitles[style]; ok {
			return label
		}
	}
	return "Become a CarolineBride"
}

var collectionTitles = map[string]string{
	"classic":     "Classic Bride Collection",
	"modern":      "Modern Bride Collection",
	"romantic":    "Romantic Bride Collection",
	"boho":        "Boho Bride Collection",
	"destination": "Destination Bride Collection",
	"courthouse":  "Courthouse Bride Collection",
	"glamour":     "Glamour Bride Collection",
	"reception":   "Reception Bride Collection",
}
