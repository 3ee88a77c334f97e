package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"carolinebride.GO/api"
	"carolinebride.GO/catalog"
	coreauth "carolinebride.GO/core/auth"
	entity "carolinebride.GO/model/entity"
	userRepo "carolinebride.GO/model/repository/user"
)

func init() {
	api.RegisterModule(RegisterAuthRoutes)
}

// adminEmailSuffix marks registrations as admin accounts. The flag can also
// be flipped directly in the users table.
const adminEmailSuffix = "+admin@carolinebride.com"

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

type userResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func RegisterAuthRoutes(apiGroup *echo.Group, db *gorm.DB, _ *catalog.Catalog) {
	repo := userRepo.NewUserRepository(db)
	g := apiGroup.Group("/auth")

	g.POST("/register", func(c echo.Context) error {
		var body credentials
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
		}
		name := strings.TrimSpace(body.Name)
		email := strings.ToLower(strings.TrimSpace(body.Email))
		if name == "" || email == "" || body.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name, email and password are required"})
		}

		existing, err := repo.FindByEmail(email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		if existing != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already registered"})
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}

		u := &entity.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			IsAdmin:      body.IsAdmin || strings.HasSuffix(email, adminEmailSuffix),
		}
		if err := repo.Create(u); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}

		token, err := coreauth.IssueToken(u.UserID, u.IsAdmin)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"token": token,
			"user":  userResponse{Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin},
		})
	})

	g.POST("/login", func(c echo.Context) error {
		var body credentials
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
		}
		email := strings.ToLower(strings.TrimSpace(body.Email))

		u, err := repo.FindByEmail(email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)) != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}

		token, err := coreauth.IssueToken(u.UserID, u.IsAdmin)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user":  userResponse{Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin},
		})
	})
}
