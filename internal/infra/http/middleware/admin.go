package middleware

import (
	"net/http"

	"github.com/Jarmey101/agentpipeline/internal/infra/auth"
)

// RequireAdmin gates server-rendered pages behind the signed-cookie session.
// Unauthenticated browsers are sent to the login page.
func RequireAdmin(cookieSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.IsAdminFromRequest(r, cookieSecret) {
				http.Redirect(w, r, "/auth", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
