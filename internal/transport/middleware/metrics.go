package middleware

import (
	"net/http"
	"time"
)

type requestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics records count and latency of requests to one route. route is the
// mux pattern, which keeps label cardinality bounded.
func Metrics(observer requestObserver, route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			observer.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
