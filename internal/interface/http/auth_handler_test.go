package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSetsCookiesAndOmitsPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")

	w := ts.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	names := map[string]bool{}
	for _, c := range w.Result().Cookies() {
		names[c.Name] = true
	}
	assert.True(t, names["access_token"])
	assert.True(t, names["refresh_token"])

	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")

	w := ts.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMalformedPayload(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshWithCookie(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")

	login := ts.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var refresh *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == "refresh_token" {
			refresh = c
		}
	}
	require.NotNil(t, refresh)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	req.AddCookie(refresh)
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshWithoutCookie(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/api/refresh", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWelcomeRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/welcome", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodGet, "/api/welcome", "ada@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestGarbageBearerToken(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/welcome", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookies(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")

	w := ts.do(t, http.MethodPost, "/api/logout", "ada@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" || c.Name == "refresh_token" {
			assert.Less(t, c.MaxAge, 0)
		}
	}
}
