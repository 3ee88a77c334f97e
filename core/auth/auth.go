package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"carolinebride.GO/config"
)

const tokenTTL = 7 * 24 * time.Hour

// IssueToken signs a JWT for a user. The is_admin claim gates the /api/admin routes.
func IssueToken(userID uint, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"is_admin": isAdmin,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken validates a JWT and returns (userID, isAdmin).
func ParseToken(raw string) (uint, bool, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, fmt.Errorf("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid subject")
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return uint(id), isAdmin, nil
}

// Middleware returns the JWT auth middleware for the /api group.
func Middleware() echo.MiddlewareFunc {
	skipper := buildSkipper()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Missing authorization token"})
			}
			userID, isAdmin, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or expired token"})
			}
			c.Set("user_id", userID)
			c.Set("is_admin", isAdmin)
			return next(c)
		}
	}
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

// UserID returns the authenticated user id from the request context.
func UserID(c echo.Context) uint {
	if v, ok := c.Get("user_id").(uint); ok {
		return v
	}
	return 0
}

// IsAdmin reports whether the request carries the admin claim.
func IsAdmin(c echo.Context) bool {
	v, _ := c.Get("is_admin").(bool)
	return v
}
