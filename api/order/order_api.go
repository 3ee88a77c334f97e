package order

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	"carolinebride.GO/api"
	"carolinebride.GO/catalog"
	coreauth "carolinebride.GO/core/auth"
	entity "carolinebride.GO/model/entity"
	orderRepo "carolinebride.GO/model/repository/order"
	orderService "carolinebride.GO/service/order"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

func RegisterOrderRoutes(apiGroup *echo.Group, db *gorm.DB, _ *catalog.Catalog) {
	repo := orderRepo.NewOrderRepository(db)

	// POST /api/orders — place an order from the cart contents
	apiGroup.POST("/orders", func(c echo.Context) error {
		var body struct {
			Items []map[string]interface{} `json:"items"`
			Total *float64                 `json:"total"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
		}
		if len(body.Items) == 0 || body.Total == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Items and total are required"})
		}

		items := make([]entity.CartItem, 0, len(body.Items))
		for _, raw := range body.Items {
			var item entity.CartItem
			if err := mapstructure.WeakDecode(raw, &item); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid order item: " + err.Error()})
			}
			items = append(items, item)
		}

		res, err := orderService.Place(db, coreauth.UserID(c), items, *body.Total)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"order": res.Order})
	})

	// GET /api/orders — caller's order history, newest first
	apiGroup.GET("/orders", func(c echo.Context) error {
		orders, err := repo.FindByUserID(coreauth.UserID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"orders": orders})
	})

	admin := apiGroup.Group("/admin")

	// GET /api/admin/orders — all orders (admin grid)
	admin.GET("/orders", func(c echo.Context) error {
		if !coreauth.IsAdmin(c) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Admin privileges required"})
		}
		orders, err := repo.FindAll()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"orders": orders})
	})

	// PATCH /api/admin/orders/:id — status mutation
	admin.PATCH("/orders/:id", func(c echo.Context) error {
		if !coreauth.IsAdmin(c) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Admin privileges required"})
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid order id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil || !entity.ValidOrderStatus(body.Status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid status"})
		}
		updated, err := repo.UpdateStatus(uint(id), body.Status)
		if orderRepo.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"order": updated})
	})
}
