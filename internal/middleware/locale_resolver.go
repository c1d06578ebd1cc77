package middleware

import (
	"context"
	"net/http"

	"landingpro.dev/web/internal/i18n"
)

const localeCookieName = "hl"

// defaultLang answers when neither the session nor the bundle knows better.
const defaultLang = "pt"

// Locale resolves and stores the preferred language in the session and cookie `hl`.
// Unsupported values are ignored.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ctxKeyLocaleFB, bundle.Fallback())
			r = r.WithContext(ctx)
			s := GetSession(r)
			if s.Locale != "" && !bundle.IsSupported(s.Locale) {
				s.Locale = ""
			}
			if q := normalize(r.URL.Query().Get("hl")); q != "" && bundle.IsSupported(q) {
				if s.Locale != q {
					s.Locale = q
					s.MarkDirty()
				}
				http.SetCookie(w, &http.Cookie{
					Name:     localeCookieName,
					Value:    q,
					Path:     "/",
					Secure:   secureCookies(),
					SameSite: http.SameSiteLaxMode,
				})
			} else if s.Locale == "" {
				if c, err := r.Cookie(localeCookieName); err == nil && bundle.IsSupported(normalize(c.Value)) {
					s.Locale = normalize(c.Value)
				} else {
					s.Locale = bundle.Resolve(r.Header.Get("Accept-Language"))
				}
				s.MarkDirty()
			}
			if s.Locale != "" {
				w.Header().Set("Content-Language", s.Locale)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func normalize(lang string) string {
	return i18n.Base(lang)
}

// Lang returns current lang from session, then the bundle fallback, then "pt".
func Lang(r *http.Request) string {
	if s := GetSession(r); s != nil && s.Locale != "" {
		return s.Locale
	}
	if fb, ok := r.Context().Value(ctxKeyLocaleFB).(string); ok && fb != "" {
		return fb
	}
	return defaultLang
}
