package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"
)

// Two cooperating cookies: an opaque marker and a detached HMAC signature
// over it. The pair carries no identity, only "is admin". Names are kept
// stable so existing sessions survive deploys.
const (
	CookieName    = "ap_admin"
	SigCookieName = "ap_admin_sig"

	adminMarker  = "1"
	cookieMaxAge = 14 * 24 * time.Hour
)

func Sign(secret, value string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

func SetAdminCookies(w http.ResponseWriter, secret string) {
	maxAge := int(cookieMaxAge.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    adminMarker,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     SigCookieName,
		Value:    Sign(secret, adminMarker),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAdminCookies reissues both cookies already expired.
func ClearAdminCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: SigCookieName, Value: "", Path: "/", MaxAge: -1})
}

// IsAdminFromRequest authenticates only when both cookies are present and the
// signature verifies against the marker with the server secret.
func IsAdminFromRequest(r *http.Request, secret string) bool {
	marker, err := r.Cookie(CookieName)
	if err != nil || marker.Value == "" {
		return false
	}
	sig, err := r.Cookie(SigCookieName)
	if err != nil || sig.Value == "" {
		return false
	}

	expected := Sign(secret, marker.Value)
	return hmac.Equal([]byte(expected), []byte(sig.Value)) && marker.Value == adminMarker
}
