package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/safe-edu/api-go/models"
)

func TestLoginBypassAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	ac := NewAuthController(db)

	r := testRouter(nil)
	r.POST("/login", ac.Login)
	w := performJSON(r, http.MethodPost, "/login", map[string]string{
		"email":    "admin@gmail.com",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if token, _ := body["access_token"].(string); token == "" {
		t.Fatalf("bypass login must issue an access token")
	}
	if token, _ := body["refresh_token"].(string); token == "" {
		t.Fatalf("bypass login must issue a refresh token")
	}

	// Bypass sessions never persist refresh tokens
	var persisted int64
	db.Model(&models.RefreshToken{}).Count(&persisted)
	if persisted != 0 {
		t.Fatalf("bypass login must not persist refresh tokens, found %d", persisted)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	ac := NewAuthController(db)

	r := testRouter(nil)
	r.POST("/login", ac.Login)
	w := performJSON(r, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@school.edu.ph",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRegisterRejectsParentRole(t *testing.T) {
	db := setupTestDB(t)
	ac := NewAuthController(db)

	r := testRouter(nil)
	r.POST("/register", ac.Register)
	w := performJSON(r, http.MethodPost, "/register", map[string]string{
		"username": "elena_santos",
		"email":    "elena@school.edu.ph",
		"password": "secret123",
		"fullName": "Elena Santos",
		"role":     models.RoleParent,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self-registration is staff only, expected 400, got %d", w.Code)
	}
}

func TestRegisterCreatesStaffUser(t *testing.T) {
	db := setupTestDB(t)
	ac := NewAuthController(db)

	r := testRouter(nil)
	r.POST("/register", ac.Register)
	w := performJSON(r, http.MethodPost, "/register", map[string]string{
		"username": "sarah_cruz",
		"email":    "sarah@school.edu.ph",
		"password": "secret123",
		"fullName": "Sarah Cruz",
		"role":     models.RoleCounselor,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.First(&user, "email = ?", "sarah@school.edu.ph").Error; err != nil {
		t.Fatalf("registered user was not persisted: %v", err)
	}
	if user.Password == nil || *user.Password == "secret123" {
		t.Fatalf("password must be stored hashed")
	}
	if n := countAuditEntries(t, db, models.AuditCategorySecurity); n != 1 {
		t.Fatalf("registration must append one security audit entry, got %d", n)
	}
}
