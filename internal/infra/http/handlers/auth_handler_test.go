package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jarmey101/agentpipeline/internal/infra/auth"
)

const (
	testAdminPassword = "hunter2"
	testCookieSecret  = "cookie-secret"
)

func loginRequest(t *testing.T, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	NewAuthHandler(testAdminPassword, testCookieSecret).Login(w, req)
	return w
}

func TestLoginSuccessSetsBothCookiesThatVerify(t *testing.T) {
	w := loginRequest(t, testAdminPassword)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)

	replay := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range cookies {
		replay.AddCookie(c)
	}
	assert.True(t, auth.IsAdminFromRequest(replay, testCookieSecret))
}

func TestLoginWrongPassword(t *testing.T) {
	w := loginRequest(t, "wrong")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginInvalidBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte("{}")))
	w := httptest.NewRecorder()

	NewAuthHandler(testAdminPassword, testCookieSecret).Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginNotConfigured(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"password": "anything"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	NewAuthHandler("", "").Login(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	w := httptest.NewRecorder()

	NewAuthHandler(testAdminPassword, testCookieSecret).Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	}

	// A browser that honored the expiry presents no cookies at all.
	replay := httptest.NewRequest("GET", "/dashboard", nil)
	assert.False(t, auth.IsAdminFromRequest(replay, testCookieSecret))
}
