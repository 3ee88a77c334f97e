package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	authApi "carolinebride.GO/api/auth"
	"carolinebride.GO/config"
	coreauth "carolinebride.GO/core/auth"
)

func authServer(t *testing.T) *echo.Echo {
	t.Helper()
	config.LoadAppConfig()
	e := echo.New()
	authApi.RegisterAuthRoutes(e.Group("/api"), testDB(t), nil)
	return e
}

func postJSON(e *echo.Echo, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthAPI_RegisterAndLogin(t *testing.T) {
	e := authServer(t)

	rec := postJSON(e, "/api/auth/register", map[string]string{
		"name": "Caroline", "email": "Caroline@Example.com", "password": "secret123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email   string `json:"email"`
			IsAdmin bool   `json:"isAdmin"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Error("register returned no token")
	}
	// Email is normalized to lower case.
	if resp.User.Email != "caroline@example.com" {
		t.Errorf("email = %q", resp.User.Email)
	}
	if resp.User.IsAdmin {
		t.Error("plain registration must not be admin")
	}

	// The issued token round-trips through the middleware's parser.
	userID, isAdmin, err := coreauth.ParseToken(resp.Token)
	if err != nil || userID == 0 || isAdmin {
		t.Errorf("ParseToken = %d, %v, %v", userID, isAdmin, err)
	}

	rec = postJSON(e, "/api/auth/login", map[string]string{
		"email": "caroline@example.com", "password": "secret123",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(e, "/api/auth/login", map[string]string{
		"email": "caroline@example.com", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", rec.Code)
	}

	rec = postJSON(e, "/api/auth/login", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d, want 401", rec.Code)
	}
}

func TestAuthAPI_RegisterValidation(t *testing.T) {
	e := authServer(t)

	rec := postJSON(e, "/api/auth/register", map[string]string{"email": "a@b.com"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing fields status = %d, want 400", rec.Code)
	}

	postJSON(e, "/api/auth/register", map[string]string{
		"name": "Dup", "email": "dup@example.com", "password": "x12345",
	})
	rec = postJSON(e, "/api/auth/register", map[string]string{
		"name": "Dup", "email": "dup@example.com", "password": "x12345",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate email status = %d, want 400", rec.Code)
	}
}

func TestAuthAPI_AdminSuffix(t *testing.T) {
	e := authServer(t)

	rec := postJSON(e, "/api/auth/register", map[string]string{
		"name": "Boss", "email": "boss+admin@carolinebride.com", "password": "secret123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			IsAdmin bool `json:"isAdmin"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.User.IsAdmin {
		t.Error("admin suffix email should grant admin")
	}
	if _, isAdmin, _ := coreauth.ParseToken(resp.Token); !isAdmin {
		t.Error("token should carry the admin claim")
	}
}
