package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/middleware"
)

// setupTestDB points the shared connection at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.MigrateForTest(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func registerTestUser(t *testing.T, username, role, password string) {
	t.Helper()
	rr := postJSON(t, Register, "/register", map[string]string{
		"username":  username,
		"firstName": "Asha",
		"lastName":  "Mwangi",
		"email":     username + "@nyumbani.example",
		"phone":     "+254700000001",
		"sex":       choices.SexFemale,
		"password":  password,
		"role":      role,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, rr.Code, rr.Body.String())
	}
}

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	registerTestUser(t, "asha", choices.RoleFarmManager, "a-strong-one")

	rr := postJSON(t, Login, "/login", map[string]string{
		"username": "asha",
		"password": "a-strong-one",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Error("login response has no token")
	}
	if resp.User.Role != choices.RoleFarmManager {
		t.Errorf("role = %q, expected %q", resp.User.Role, choices.RoleFarmManager)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	setupTestDB(t)
	registerTestUser(t, "asha", choices.RoleFarmWorker, "a-strong-one")

	rr := postJSON(t, Login, "/login", map[string]string{
		"username": "asha",
		"password": "not-the-one",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, expected %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	registerTestUser(t, "asha", choices.RoleFarmWorker, "a-strong-one")

	rr := postJSON(t, Register, "/register", map[string]string{
		"username": "asha",
		"phone":    "+254700000002",
		"sex":      choices.SexMale,
		"password": "another-one",
		"role":     choices.RoleFarmWorker,
	})
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate username status = %d, expected %d", rr.Code, http.StatusConflict)
	}
}

func TestProfileReturnsAuthenticatedUser(t *testing.T) {
	setupTestDB(t)
	registerTestUser(t, "asha", choices.RoleFarmManager, "a-strong-one")

	rr := postJSON(t, Login, "/login", map[string]string{
		"username": "asha",
		"password": "a-strong-one",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	pr := httptest.NewRecorder()
	middleware.JWTMiddleware(http.HandlerFunc(Profile)).ServeHTTP(pr, req)
	if pr.Code != http.StatusOK {
		t.Fatalf("profile: status %d, body %s", pr.Code, pr.Body.String())
	}
	var user struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(pr.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode profile response: %v", err)
	}
	if user.Username != "asha" {
		t.Errorf("profile username = %q, expected %q", user.Username, "asha")
	}
}

func TestProfileWithoutClaims(t *testing.T) {
	setupTestDB(t)
	req := httptest.NewRequest("GET", "/profile", nil)
	rr := httptest.NewRecorder()
	Profile(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("no claims status = %d, expected %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	setupTestDB(t)
	rr := postJSON(t, Register, "/register", map[string]string{
		"username": "bob",
		"sex":      choices.SexMale,
		"password": "a-strong-one",
		"role":     "Barn Cat",
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown role status = %d, expected %d", rr.Code, http.StatusBadRequest)
	}
}
