package middleware

import (
	"net/http"
	"sync/atomic"
)

// RequestCounter counts requests and error responses for the /stats
// endpoint. Prometheus metrics cover the engine itself.
type RequestCounter struct {
	requests    atomic.Int64
	clientErrs  atomic.Int64
	serverErrs  atomic.Int64
	rateLimited atomic.Int64
}

// NewRequestCounter creates a zeroed counter.
func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

// Middleware returns middleware that counts requests by outcome.
func (rc *RequestCounter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc.requests.Add(1)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		switch {
		case rw.statusCode == http.StatusTooManyRequests:
			rc.rateLimited.Add(1)
			rc.clientErrs.Add(1)
		case rw.statusCode >= 500:
			rc.serverErrs.Add(1)
		case rw.statusCode >= 400:
			rc.clientErrs.Add(1)
		}
	})
}

// RequestStats is a point-in-time copy of the counters.
type RequestStats struct {
	Requests     int64 `json:"requests"`
	ClientErrors int64 `json:"client_errors"`
	ServerErrors int64 `json:"server_errors"`
	RateLimited  int64 `json:"rate_limited"`
}

func (rc *RequestCounter) Snapshot() RequestStats {
	return RequestStats{
		Requests:     rc.requests.Load(),
		ClientErrors: rc.clientErrs.Load(),
		ServerErrors: rc.serverErrs.Load(),
		RateLimited:  rc.rateLimited.Load(),
	}
}
