package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/social-crud/backend/internal/models"
	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/anonto42/social-crud/backend/internal/router"
	"github.com/anonto42/social-crud/backend/pkg/config"
	"github.com/labstack/echo/v4"
)

// newTestServer builds the full application over a private in-memory store
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := config.InitDB(&config.Config{Env: "test", DBPath: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(db.CloseDB)
	if err := repositories.AutoMigrate(db.SQL); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	e := echo.New()
	config.SetupMiddleware(e)
	router.SetupRoutes(e, db.SQL)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func expectMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	body := decode[map[string]interface{}](t, rec)
	if body["message"] != want {
		t.Errorf("expected message %q, got %v", want, body["message"])
	}
}

func createUser(t *testing.T, e *echo.Echo, username string) models.User {
	t.Helper()
	rec := doRequest(t, e, http.MethodPost, "/users", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret",
	})
	expectStatus(t, rec, http.StatusCreated)
	return decode[models.User](t, rec)
}

func createPost(t *testing.T, e *echo.Echo, userID uint) models.Post {
	t.Helper()
	rec := doRequest(t, e, http.MethodPost, "/posts", map[string]interface{}{"user_id": userID})
	expectStatus(t, rec, http.StatusCreated)
	return decode[models.Post](t, rec)
}

func createComment(t *testing.T, e *echo.Echo, authorID, postID uint, text string) models.Comment {
	t.Helper()
	rec := doRequest(t, e, http.MethodPost, "/comments", map[string]interface{}{
		"comment_text": text,
		"author_id":    authorID,
		"post_id":      postID,
	})
	expectStatus(t, rec, http.StatusCreated)
	return decode[models.Comment](t, rec)
}

func path(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
