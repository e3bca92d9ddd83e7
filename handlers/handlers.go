// Package handlers implements the public and admin HTTP API over the
// engine-agnostic SQL client.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/arsurgical/hub-backend/db/kvdb"
	"github.com/arsurgical/hub-backend/db/sqldb"
	"github.com/arsurgical/hub-backend/responses"
	"github.com/arsurgical/hub-backend/throttle"
)

// API bundles the shared dependencies of all handlers. Cache may be nil,
// which disables response caching.
type API struct {
	DB        sqldb.Client
	Cache     kvdb.Client
	JWTSecret []byte

	loginLimiter *throttle.Buckets[string]
}

func NewAPI(db sqldb.Client, cache kvdb.Client, jwtSecret []byte) *API {
	return &API{
		DB:        db,
		Cache:     cache,
		JWTSecret: jwtSecret,
		loginLimiter: throttle.NewBuckets[string](throttle.Conf{
			Burst:     loginBurst,
			Increment: loginRefill,
			Period:    loginPeriod,
		}),
	}
}

// nullIfEmpty maps "" to SQL NULL for optional foreign keys.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func encodeForCache(v any) ([]byte, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARN] cache encode: %v", err)
		return nil, err
	}
	return jsonBytes, nil
}

func writeDBError(w http.ResponseWriter, op string, err error) {
	log.Printf("[ERROR] %s: %v", op, err)
	responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
}

func rowString(row sqldb.Row, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func rowInt64(row sqldb.Row, key string) int64 {
	switch v := row[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func rowFloat64(row sqldb.Row, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
