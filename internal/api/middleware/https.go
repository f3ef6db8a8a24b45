package middleware

import "net/http"

// RequireHTTPS redirects requests that reached the proxy over plain HTTP to
// the same URL on https. The proxy reports the client scheme in
// X-Forwarded-Proto. When enabled is false the handler is returned unchanged.
func RequireHTTPS(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") != "https" {
				http.Redirect(w, r, "https://"+r.Host+r.URL.RequestURI(), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
