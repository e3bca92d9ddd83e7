package handlers

import (
	"net/http"
	"time"

	"github.com/arsurgical/hub-backend/requests"
	"github.com/arsurgical/hub-backend/responses"
)

// Login throttle: 10 attempts per client IP, one token back every 30s.
const (
	loginBurst  = 10
	loginRefill = 1
	loginPeriod = 30 * time.Second
)

// ThrottleLogin wraps the login route with a per-IP token bucket.
func (a *API) ThrottleLogin(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.loginLimiter.Allow(requests.GetClientIP(r)) {
			responses.WriteSimpleErrorJSON(w, http.StatusTooManyRequests, "too many login attempts, try again later")
			return
		}
		inner.ServeHTTP(w, r)
	})
}
