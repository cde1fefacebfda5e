package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"infinite-experiment/motorpool/internal/metrics"
)

var whitelistedIPs = map[string]bool{
	"127.0.0.1": true, // local probes
	"::1":       true,
}

// RateLimitMiddleware throttles clients per source IP. Limiters sit in a TTL
// cache so idle clients age out of memory.
func RateLimitMiddleware(rps float64, burst int, metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	limiters := gocache.New(10*time.Minute, 15*time.Minute)
	var limitersMutex sync.Mutex

	getLimiter := func(ip string) *rate.Limiter {
		limitersMutex.Lock()
		defer limitersMutex.Unlock()

		if cached, ok := limiters.Get(ip); ok {
			return cached.(*rate.Limiter)
		}
		limiter := rate.NewLimiter(rate.Limit(rps), burst)
		limiters.SetDefault(ip, limiter)
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if whitelistedIPs[ip] {
				next.ServeHTTP(w, r)
				return
			}

			if !getLimiter(ip).Allow() {
				metricsReg.RateLimitedTotal.WithLabelValues(NormalizeEndpoint(r.URL.Path)).Inc()
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
