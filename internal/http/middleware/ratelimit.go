package middleware

import (
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	rl "github.com/rogerio-castellano/coffee-maker/internal/http/rate_limiter"
)

var rateLimitRejects = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "coffeemaker_rate_limit_rejects_total",
		Help: "Total number of requests rejected due to rate limiting",
	},
)

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit applies a token bucket per client IP.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := rl.GetVisitor(clientIP(r))
		if !limiter.Allow() {
			rateLimitRejects.Inc()
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
