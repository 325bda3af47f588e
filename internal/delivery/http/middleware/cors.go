package middleware

import (
	"net/http"
	"strings"
)

var (
	preflightMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}, ", ")
	preflightHeaders = strings.Join([]string{"Content-Type", "Accept", RequestIDHeader}, ", ")
)

// originSet holds normalized origins: trimmed, without a trailing slash.
type originSet map[string]bool

func newOriginSet(origins []string) originSet {
	set := make(originSet, len(origins))
	for _, o := range origins {
		if o = strings.TrimSuffix(strings.TrimSpace(o), "/"); o != "" {
			set[o] = true
		}
	}
	return set
}

// CORS lets the admin front end on one of origins call the API with credentials.
// OPTIONS requests are answered with 204 and never reach the router; unknown origins
// get no CORS headers at all.
func CORS(origins []string) Middleware {
	allowed := newOriginSet(origins)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()
			if allowed[origin] {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				if allowed[origin] {
					h.Set("Access-Control-Allow-Methods", preflightMethods)
					h.Set("Access-Control-Allow-Headers", preflightHeaders)
					h.Set("Access-Control-Max-Age", "86400")
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed[origin] {
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			}
			next.ServeHTTP(w, r)
		})
	}
}
