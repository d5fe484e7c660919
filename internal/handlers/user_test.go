package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/anonto42/social-crud/backend/internal/models"
)

func TestCreateUser(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/users", map[string]interface{}{
		"username":  "luke",
		"firstname": "Luke",
		"lastname":  "Skywalker",
		"email":     "luke@example.com",
		"password":  "secret",
	})
	expectStatus(t, rec, http.StatusCreated)

	body := decode[map[string]interface{}](t, rec)
	want := map[string]interface{}{
		"username":  "luke",
		"firstname": "Luke",
		"lastname":  "Skywalker",
		"email":     "luke@example.com",
		"is_active": true,
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("%s: expected %v, got %v", k, v, body[k])
		}
	}
	if id, _ := body["id"].(float64); id == 0 {
		t.Errorf("expected an assigned id, got %v", body["id"])
	}
	if _, ok := body["password"]; ok {
		t.Error("password must not be serialized")
	}
}

func TestCreateUserExplicitlyInactive(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/users", map[string]interface{}{
		"username":  "vader",
		"email":     "vader@example.com",
		"password":  "secret",
		"is_active": false,
	})
	expectStatus(t, rec, http.StatusCreated)
	created := decode[models.User](t, rec)

	rec = doRequest(t, e, http.MethodGet, path("/users/%d", created.ID), nil)
	expectStatus(t, rec, http.StatusOK)
	if decode[models.User](t, rec).IsActive {
		t.Error("expected is_active to stay false")
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	e := newTestServer(t)
	createUser(t, e, "leia")

	rec := doRequest(t, e, http.MethodPost, "/users", map[string]interface{}{
		"username": "leia",
		"email":    "other@example.com",
		"password": "secret",
	})
	expectStatus(t, rec, http.StatusConflict)
	expectMessage(t, rec, "Conflict with existing data")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	e := newTestServer(t)
	createUser(t, e, "han")

	rec := doRequest(t, e, http.MethodPost, "/users", map[string]interface{}{
		"username": "solo",
		"email":    "han@example.com",
		"password": "secret",
	})
	expectStatus(t, rec, http.StatusConflict)
}

func TestCreateUserMissingRequiredField(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/users", map[string]interface{}{
		"username": "chewie",
		"email":    "chewie@example.com",
	})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = doRequest(t, e, http.MethodGet, "/users", nil)
	if users := decode[[]models.User](t, rec); len(users) != 0 {
		t.Errorf("expected no users to be stored, got %d", len(users))
	}
}

func TestCreateUserMalformedBody(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(t, e, http.MethodPost, "/users", "not an object")
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestGetUserNotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/users/42", nil)
	expectStatus(t, rec, http.StatusNotFound)
	expectMessage(t, rec, "User not found")
}

func TestGetUserInvalidID(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(t, e, http.MethodGet, "/users/abc", nil)
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestListUsers(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/users", nil)
	expectStatus(t, rec, http.StatusOK)
	if users := decode[[]models.User](t, rec); len(users) != 0 {
		t.Fatalf("expected empty list, got %v", users)
	}

	createUser(t, e, "r2d2")
	createUser(t, e, "c3po")

	rec = doRequest(t, e, http.MethodGet, "/users", nil)
	users := decode[[]models.User](t, rec)
	if len(users) != 2 || users[0].Username != "r2d2" || users[1].Username != "c3po" {
		t.Errorf("unexpected users: %+v", users)
	}
}

func TestTrailingSlashIsIgnored(t *testing.T) {
	e := newTestServer(t)
	user := createUser(t, e, "yoda")

	rec := doRequest(t, e, http.MethodGet, "/users/", nil)
	expectStatus(t, rec, http.StatusOK)
	if users := decode[[]models.User](t, rec); len(users) != 1 {
		t.Errorf("expected 1 user, got %d", len(users))
	}

	rec = doRequest(t, e, http.MethodGet, path("/users/%d/", user.ID), nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestUpdateUserPartial(t *testing.T) {
	e := newTestServer(t)
	user := createUser(t, e, "obiwan")

	rec := doRequest(t, e, http.MethodPut, path("/users/%d", user.ID), map[string]interface{}{
		"firstname": "Ben",
	})
	expectStatus(t, rec, http.StatusOK)

	updated := decode[models.User](t, rec)
	if updated.Firstname != "Ben" {
		t.Errorf("expected firstname Ben, got %q", updated.Firstname)
	}
	if updated.Username != user.Username || updated.Email != user.Email || updated.IsActive != user.IsActive {
		t.Errorf("fields not in the body changed: before %+v, after %+v", user, updated)
	}

	rec = doRequest(t, e, http.MethodGet, path("/users/%d", user.ID), nil)
	if got := decode[models.User](t, rec); got != updated {
		t.Errorf("stored user %+v differs from response %+v", got, updated)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(t, e, http.MethodPut, "/users/9", map[string]interface{}{"firstname": "x"})
	expectStatus(t, rec, http.StatusNotFound)
	expectMessage(t, rec, "User not found")
}

func TestUpdateUserToTakenUsername(t *testing.T) {
	e := newTestServer(t)
	createUser(t, e, "jabba")
	user := createUser(t, e, "boba")

	rec := doRequest(t, e, http.MethodPut, path("/users/%d", user.ID), map[string]interface{}{"username": "jabba"})
	expectStatus(t, rec, http.StatusConflict)
}

func TestDeleteUser(t *testing.T) {
	e := newTestServer(t)
	user := createUser(t, e, "lando")

	rec := doRequest(t, e, http.MethodDelete, path("/users/%d", user.ID), nil)
	expectStatus(t, rec, http.StatusOK)
	expectMessage(t, rec, "User deleted")

	rec = doRequest(t, e, http.MethodGet, path("/users/%d", user.ID), nil)
	expectStatus(t, rec, http.StatusNotFound)

	rec = doRequest(t, e, http.MethodDelete, path("/users/%d", user.ID), nil)
	expectStatus(t, rec, http.StatusNotFound)
}

func TestDeleteUserWithPostsIsRejected(t *testing.T) {
	e := newTestServer(t)
	user := createUser(t, e, "palpatine")
	createPost(t, e, user.ID)

	rec := doRequest(t, e, http.MethodDelete, path("/users/%d", user.ID), nil)
	expectStatus(t, rec, http.StatusConflict)
	expectMessage(t, rec, "Conflict with existing data")

	rec = doRequest(t, e, http.MethodGet, path("/users/%d", user.ID), nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestDeleteUserWithCommentsIsRejected(t *testing.T) {
	e := newTestServer(t)
	owner := createUser(t, e, "maul")
	author := createUser(t, e, "savage")
	post := createPost(t, e, owner.ID)
	createComment(t, e, author.ID, post.ID, "brother")

	rec := doRequest(t, e, http.MethodDelete, path("/users/%d", author.ID), nil)
	expectStatus(t, rec, http.StatusConflict)
	if strings.Contains(rec.Body.String(), "FOREIGN KEY") {
		t.Errorf("driver text leaked into response: %s", rec.Body.String())
	}
}
