package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Jarmey101/agentpipeline/internal/infra/auth"
)

type AuthHandler struct {
	AdminPassword string
	CookieSecret  string
}

func NewAuthHandler(adminPassword, cookieSecret string) *AuthHandler {
	return &AuthHandler{
		AdminPassword: adminPassword,
		CookieSecret:  cookieSecret,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.AdminPassword == "" || h.CookieSecret == "" {
		writeErrorResponse(w, http.StatusInternalServerError,
			"auth not configured, missing APP_ADMIN_PASSWORD or APP_COOKIE_SECRET")
		return
	}

	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Password == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if input.Password != h.AdminPassword {
		writeErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	auth.SetAdminCookies(w, h.CookieSecret)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearAdminCookies(w)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
