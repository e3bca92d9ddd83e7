package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/arsurgical/hub-backend/responses"
	"github.com/arsurgical/hub-backend/sec"
)

type ctxKey int

const (
	ctxKeyUserID ctxKey = iota
	ctxKeyUserRole
)

// UserIDFromContext returns the authenticated user's id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(string)
	return id, ok
}

// RequireAdmin rejects requests without a valid admin bearer token.
func (a *API) RequireAdmin(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authz, "Bearer ")
		if !found || token == "" {
			responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, role, err := sec.ParseUserToken(a.JWTSecret, token)
		if err != nil {
			responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if role != "admin" {
			responses.WriteSimpleErrorJSON(w, http.StatusForbidden, "admin access required")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
		ctx = context.WithValue(ctx, ctxKeyUserRole, role)
		inner.ServeHTTP(w, r.WithContext(ctx))
	})
}
