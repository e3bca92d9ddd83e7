package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/arsurgical/hub-backend/responses"
)

const (
	productListCacheKey = "cache:products"
	productCacheTTL     = 60 * time.Second
)

const productListStmt = `
SELECT p.id, p.category_id, c.name AS category_name, p.name, p.description,
       p.price, p.stock, p.image_url, p.is_active
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
WHERE p.is_active = TRUE`

// ListProducts serves the public catalog, optionally filtered by
// category id. Only the unfiltered list is cached: the cache layer has
// no key scanning, so one well-known key keeps invalidation exact.
func (a *API) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	if category == "" && a.Cache != nil {
		if cached, found, err := a.Cache.Get(r.Context(), productListCacheKey); err == nil && found {
			responses.WriteJSONBytes(w, http.StatusOK, []byte(cached))
			return
		}
	}

	stmt := productListStmt + " ORDER BY p.name"
	args := []any{}
	if category != "" {
		stmt = productListStmt + " AND p.category_id = $1 ORDER BY p.name"
		args = append(args, category)
	}

	res, err := a.DB.Query(r.Context(), stmt, args...)
	if err != nil {
		writeDBError(w, "list products", err)
		return
	}

	if category == "" && a.Cache != nil {
		a.cacheJSON(r, productListCacheKey, res.Rows, productCacheTTL)
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows)
}

func (a *API) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	res, err := a.DB.Query(r.Context(), productListStmt+" AND p.id = $1", id)
	if err != nil {
		writeDBError(w, "get product", err)
		return
	}
	if len(res.Rows) == 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "product not found")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows[0])
}

// cacheJSON stores v's JSON encoding under key, logging cache failures
// instead of surfacing them.
func (a *API) cacheJSON(r *http.Request, key string, v any, ttl time.Duration) {
	jsonBytes, err := encodeForCache(v)
	if err != nil {
		return
	}
	if err := a.Cache.Set(r.Context(), key, jsonBytes, ttl); err != nil {
		log.Printf("[WARN] cache set %s: %v", key, err)
	}
}

// invalidateCatalogCache drops response caches touched by admin writes.
func (a *API) invalidateCatalogCache(r *http.Request) {
	if a.Cache == nil {
		return
	}
	if _, err := a.Cache.Delete(r.Context(), productListCacheKey, statsCacheKey); err != nil {
		log.Printf("[WARN] cache invalidation: %v", err)
	}
}
