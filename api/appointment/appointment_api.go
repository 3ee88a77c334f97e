package appointment

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"carolinebride.GO/api"
	"carolinebride.GO/catalog"
	coreauth "carolinebride.GO/core/auth"
	entity "carolinebride.GO/model/entity"
	apptRepo "carolinebride.GO/model/repository/appointment"
)

func init() {
	api.RegisterModule(RegisterAppointmentRoutes)
}

type appointmentRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Service       string  `json:"service"`
	Address       *string `json:"address"`
	StoreLocation *string `json:"storeLocation"`
	PaymentMethod *string `json:"paymentMethod"`
	Notes         *string `json:"notes"`
}

func (r appointmentRequest) complete() bool {
	return r.Name != "" && r.Email != "" && r.Phone != "" && r.Date != "" && r.Time != "" && r.Service != ""
}

func RegisterAppointmentRoutes(apiGroup *echo.Group, db *gorm.DB, _ *catalog.Catalog) {
	repo := apptRepo.NewAppointmentRepository(db)

	// POST /api/appointments — book a fitting/consultation
	apiGroup.POST("/appointments", func(c echo.Context) error {
		var body appointmentRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
		}
		if !body.complete() {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please complete all required fields"})
		}

		a := &entity.Appointment{
			UserID:        coreauth.UserID(c),
			Name:          body.Name,
			Email:         body.Email,
			Phone:         body.Phone,
			Date:          body.Date,
			Time:          body.Time,
			Service:       body.Service,
			Address:       body.Address,
			StoreLocation: body.StoreLocation,
			PaymentMethod: body.PaymentMethod,
			Notes:         body.Notes,
		}
		if err := repo.Create(a); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"appointment": a})
	})

	// GET /api/appointments — caller's bookings, latest date first
	apiGroup.GET("/appointments", func(c echo.Context) error {
		appts, err := repo.FindByUserID(coreauth.UserID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"appointments": appts})
	})

	// GET /api/admin/appointments — all bookings (admin grid)
	apiGroup.GET("/admin/appointments", func(c echo.Context) error {
		if !coreauth.IsAdmin(c) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Admin privileges required"})
		}
		appts, err := repo.FindAll()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"appointments": appts})
	})
}
