package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// DarkModeCookie holds the persisted color scheme as a JSON boolean.
const DarkModeCookie = "darkMode"

const darkModeMaxAge = 365 * 24 * time.Hour

// Theme reads the dark mode preference once per request and stores it in context.
// A missing or malformed cookie means light mode.
func Theme(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dark := ReadDarkMode(r)
		ctx := context.WithValue(r.Context(), ctxKeyDarkMode, dark)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DarkMode returns the preference stored by Theme.
func DarkMode(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyDarkMode).(bool)
	return v
}

// ReadDarkMode decodes the darkMode cookie.
func ReadDarkMode(r *http.Request) bool {
	c, err := r.Cookie(DarkModeCookie)
	if err != nil {
		return false
	}
	dark, ok := ParseDarkMode(c.Value)
	return ok && dark
}

// ParseDarkMode decodes a stored value. ok is false for anything but a JSON boolean.
func ParseDarkMode(raw string) (dark bool, ok bool) {
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &dark); err != nil {
		return false, false
	}
	return dark, true
}

// WriteDarkMode persists dark as "true" or "false".
func WriteDarkMode(w http.ResponseWriter, dark bool) {
	b, _ := json.Marshal(dark)
	http.SetCookie(w, &http.Cookie{
		Name:     DarkModeCookie,
		Value:    string(b),
		Path:     "/",
		MaxAge:   int(darkModeMaxAge / time.Second),
		Secure:   secureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}
