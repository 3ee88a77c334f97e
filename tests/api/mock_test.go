package apitest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"carolinebride.GO/catalog"
	"carolinebride.GO/config"
	entity "carolinebride.GO/model/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Cart{}, &entity.Order{}, &entity.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	config.LoadAppConfig()
	cat, err := catalog.Load("../../data/catalog.json")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

// asUser injects the auth context the JWT middleware would normally set.
func asUser(userID uint, isAdmin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", userID)
			c.Set("is_admin", isAdmin)
			return next(c)
		}
	}
}
