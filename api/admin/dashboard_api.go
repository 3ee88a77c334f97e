package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"carolinebride.GO/api"
	"carolinebride.GO/catalog"
	coreauth "carolinebride.GO/core/auth"
	apptRepo "carolinebride.GO/model/repository/appointment"
	orderRepo "carolinebride.GO/model/repository/order"
)

func init() {
	api.RegisterModule(RegisterDashboardRoutes)
}

// DashboardResponse summarizes store activity for the admin landing view.
type DashboardResponse struct {
	Orders       int64 `json:"orders"`
	Appointments int64 `json:"appointments"`
	CatalogItems int   `json:"catalog_items"`
}

func RegisterDashboardRoutes(apiGroup *echo.Group, db *gorm.DB, cat *catalog.Catalog) {
	orders := orderRepo.NewOrderRepository(db)
	appts := apptRepo.NewAppointmentRepository(db)

	// GET /api/admin/dashboard — counts gathered concurrently
	apiGroup.GET("/admin/dashboard", func(c echo.Context) error {
		if !coreauth.IsAdmin(c) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Admin privileges required"})
		}
		start := time.Now()

		var resp DashboardResponse
		resp.CatalogItems = cat.Len()

		var g errgroup.Group
		g.Go(func() error {
			n, err := orders.Count()
			resp.Orders = n
			return err
		})
		g.Go(func() error {
			n, err := appts.Count()
			resp.Appointments = n
			return err
		})
		if err := g.Wait(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, resp)
	})
}
