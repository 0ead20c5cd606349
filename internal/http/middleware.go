package http

import (
	"net"
	"net/http"

	rl "github.com/cratestats/cratestats/internal/http/rate_limiter"
)

// RateLimitMiddleware applies the per-IP limiter to every request. The
// dashboard is read-only, so the limits are generous; this mostly guards the
// downloads endpoint against scrapers hammering the database.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
