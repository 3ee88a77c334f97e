package cart

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	"carolinebride.GO/api"
	"carolinebride.GO/catalog"
	coreauth "carolinebride.GO/core/auth"
	entity "carolinebride.GO/model/entity"
	cartRepo "carolinebride.GO/model/repository/cart"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

func RegisterCartRoutes(apiGroup *echo.Group, db *gorm.DB, _ *catalog.Catalog) {
	repo := cartRepo.NewCartRepository(db)

	// GET /api/cart — current user's items plus running total
	apiGroup.GET("/cart", func(c echo.Context) error {
		items, err := repo.ItemsForUser(coreauth.UserID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"items": items,
			"total": cartRepo.Total(items),
		})
	})

	// POST /api/cart — replace the item list wholesale
	apiGroup.POST("/cart", func(c echo.Context) error {
		var body struct {
			Items []map[string]interface{} `json:"items"`
		}
		if err := c.Bind(&body); err != nil || body.Items == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Items must be a list"})
		}

		items := make([]entity.CartItem, 0, len(body.Items))
		for _, raw := range body.Items {
			var item entity.CartItem
			if err := mapstructure.WeakDecode(raw, &item); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid cart item: " + err.Error()})
			}
			if item.Quantity < 1 {
				item.Quantity = 1
			}
			items = append(items, item)
		}

		if err := repo.ReplaceItems(coreauth.UserID(c), items); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Cart updated",
			"total":   cartRepo.Total(items),
		})
	})
}
