package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/crewdeck-dev/crewdeck/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsTokenAndUserProjection(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	decodeJSON(t, w, &resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User["username"])
	assert.Equal(t, "Admin User", resp.User["full_name"])
	assert.Equal(t, "admin", resp.User["role"])
	assert.NotContains(t, resp.User, "password")
	assert.NotContains(t, resp.User, "password_hash")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _ := setupRouter(t)

	wrongPassword := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "not-the-password",
	})
	unknownUser := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody",
		"password": "whatever1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, wrongPassword.Body.String())
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestMeRequiresValidToken(t *testing.T) {
	r, _ := setupRouter(t)

	missing := doRequest(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, missing.Code)

	garbage := doRequest(t, r, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, garbage.Code)

	token := adminToken(t, r)
	ok := doRequest(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, ok.Code)

	var user map[string]interface{}
	decodeJSON(t, ok, &user)
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, "Admin User", user["full_name"])
}

func TestExpiredTokenIsRejected(t *testing.T) {
	r, _ := setupRouter(t)

	// Same secret as the router, but already past its expiry.
	expired := auth.NewManager(testSecret, -time.Minute)
	token, err := expired.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	r, _ := setupRouter(t)

	forged := auth.NewManager("some-other-secret", time.Hour)
	token, err := forged.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateUserAndLoginRoundTrip(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t, r)

	created := doRequest(t, r, http.MethodPost, "/api/users", token, map[string]string{
		"username":  "jsmith",
		"password":  "hunter22",
		"full_name": "John Smith",
		"role":      "manager",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	login := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "jsmith",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestCreateUserDuplicateUsernameConflicts(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t, r)

	body := map[string]string{
		"username":  "jsmith",
		"password":  "hunter22",
		"full_name": "John Smith",
	}

	first := doRequest(t, r, http.MethodPost, "/api/users", token, body)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRequest(t, r, http.MethodPost, "/api/users", token, body)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestUserListOmitsPasswordHashes(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]interface{}
	decodeJSON(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0]["username"])
	assert.NotContains(t, users[0], "password")
	assert.NotContains(t, users[0], "password_hash")
}

func TestCreateUserDefaultsRole(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/users", token, map[string]string{
		"username":  "norole",
		"password":  "hunter22",
		"full_name": "No Role",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	decodeJSON(t, w, &created)
	assert.Equal(t, "admin", created["role"])
}
