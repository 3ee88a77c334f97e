package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	adminApi "carolinebride.GO/api/admin"
	apptApi "carolinebride.GO/api/appointment"
)

func appointmentServer(t *testing.T, userID uint, isAdmin bool) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	e := echo.New()
	g := e.Group("/api", asUser(userID, isAdmin))
	apptApi.RegisterAppointmentRoutes(g, db, nil)
	return e, db
}

func TestAppointmentAPI_BookAndList(t *testing.T) {
	e, _ := appointmentServer(t, 4, false)

	rec := postJSON(e, "/api/appointments", map[string]interface{}{
		"name":    "Bride",
		"email":   "bride@example.com",
		"phone":   "555-0101",
		"date":    "2026-10-01",
		"time":    "11:00",
		"service": "fitting",
		"notes":   "second fitting",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book status = %d, body %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	get := httptest.NewRecorder()
	e.ServeHTTP(get, req)
	var resp struct {
		Appointments []struct {
			Date    string `json:"Date"`
			Service string `json:"Service"`
		} `json:"appointments"`
	}
	if err := json.NewDecoder(get.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Appointments) != 1 || resp.Appointments[0].Service != "fitting" {
		t.Errorf("appointments = %+v", resp.Appointments)
	}
}

func TestAppointmentAPI_RequiredFields(t *testing.T) {
	e, _ := appointmentServer(t, 4, false)

	rec := postJSON(e, "/api/appointments", map[string]interface{}{
		"name":  "Bride",
		"email": "bride@example.com",
		// phone/date/time/service missing
	})
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "Please complete all required fields") {
		t.Errorf("incomplete booking: %d %s", rec.Code, rec.Body.String())
	}
}

func TestAppointmentAPI_AdminList(t *testing.T) {
	e, _ := appointmentServer(t, 4, true)

	postJSON(e, "/api/appointments", map[string]interface{}{
		"name": "Bride", "email": "b@e.com", "phone": "555", "date": "2026-10-01", "time": "11:00", "service": "fitting",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/appointments", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin list status = %d", rec.Code)
	}

	// Non-admins are rejected.
	e2, _ := appointmentServer(t, 5, false)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/appointments", nil)
	rec = httptest.NewRecorder()
	e2.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin status = %d, want 403", rec.Code)
	}
}

func TestAdminDashboard(t *testing.T) {
	db := testDB(t)
	cat := testCatalog(t)
	e := echo.New()
	g := e.Group("/api", asUser(1, true))
	adminApi.RegisterDashboardRoutes(g, db, cat)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}
	var resp struct {
		Orders       int64 `json:"orders"`
		Appointments int64 `json:"appointments"`
		CatalogItems int   `json:"catalog_items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CatalogItems != 61 || resp.Orders != 0 || resp.Appointments != 0 {
		t.Errorf("dashboard = %+v", resp)
	}

	// Non-admin gets 403.
	e2 := echo.New()
	adminApi.RegisterDashboardRoutes(e2.Group("/api", asUser(2, false)), db, cat)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec = httptest.NewRecorder()
	e2.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin dashboard status = %d, want 403", rec.Code)
	}
}
