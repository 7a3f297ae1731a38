package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jobinkurian/parishdesk/internal/db"
	"github.com/jobinkurian/parishdesk/internal/models"
	"github.com/jobinkurian/parishdesk/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type testApp struct {
	app      *fiber.App
	database *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "parishdesk-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler, err := NewHandler(database, "test-secret-key", false, logger, NewMetrics())
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testApp{app: app, database: database}
}

func (ta *testApp) createUser(t *testing.T, username string, password string, isAdmin bool) models.User {
	t.Helper()

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Name:         "Test " + username,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}
	repo := db.NewUserRepository(ta.database)
	if err := repo.Create(context.Background(), &user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func (ta *testApp) login(t *testing.T, username string, password string) *http.Cookie {
	t.Helper()

	response := ta.request(t, http.MethodPost, "/api/auth/login",
		map[string]any{"username": username, "password": password}, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected status 200, got %d", username, response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("login %s: auth cookie not set", username)
	return nil
}

func (ta *testApp) request(t *testing.T, method string, target string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		request.AddCookie(cookie)
	}

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
