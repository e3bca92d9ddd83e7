package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsurgical/hub-backend/db/kvdb"
)

// memCache is an in-process kvdb.Client standing in for redis: same
// found=false-on-miss contract, and it records every deleted key.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
}

var _ kvdb.Client = (*memCache)(nil)

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func (c *memCache) Init() error         { return nil }
func (c *memCache) Close() error        { return nil }
func (c *memCache) GetConf() *kvdb.Conf { return &kvdb.Conf{Type: "mem"} }

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.entries[key] = string(v)
	case string:
		c.entries[key] = v
	default:
		return fmt.Errorf("unsupported cache value type %T", value)
	}
	return nil
}

func (c *memCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, found := c.entries[key]
	return val, found, nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for _, key := range keys {
		c.deleted = append(c.deleted, key)
		if _, found := c.entries[key]; found {
			delete(c.entries, key)
			n++
		}
	}
	return n, nil
}

func (c *memCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, found := c.entries[key]
	return val, found
}

func (c *memCache) deletedKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.deleted...)
}

// A cache hit must short-circuit the database: the canned payload comes
// back verbatim even though the seeded catalog says otherwise.
func TestProductListServedFromCache(t *testing.T) {
	cache := newMemCache()
	cache.entries["cache:products"] = `[{"id":"from-cache"}]`
	app := newTestAppWithCache(t, cache)

	rec := app.do(t, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeBody[[]map[string]any](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "from-cache", products[0]["id"])
}

func TestProductListPopulatesCacheOnMiss(t *testing.T) {
	cache := newMemCache()
	app := newTestAppWithCache(t, cache)

	rec := app.do(t, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	stored, found := cache.get("cache:products")
	require.True(t, found)
	var cached []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stored), &cached))
	assert.Len(t, cached, 6)

	// filtered lists bypass the cache in both directions
	rec = app.do(t, http.MethodGet, "/api/products?category=some-id", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, cache.entries, 1)
}

func TestAdminStatsCaching(t *testing.T) {
	cache := newMemCache()
	app := newTestAppWithCache(t, cache)
	adminToken := app.loginToken(t, testAdminEmail, testAdminPassword)

	rec := app.do(t, http.MethodGet, "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	_, found := cache.get("cache:admin_stats")
	assert.True(t, found)

	cache.entries["cache:admin_stats"] = `{"total_users":999}`
	rec = app.do(t, http.MethodGet, "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 999, stats["total_users"])
}

// Every admin product write drops both response caches.
func TestAdminProductWritesInvalidateCache(t *testing.T) {
	cache := newMemCache()
	app := newTestAppWithCache(t, cache)
	adminToken := app.loginToken(t, testAdminEmail, testAdminPassword)

	rec := app.do(t, http.MethodPost, "/api/admin/products", map[string]any{
		"name":  "Suture Kit",
		"price": 30.0,
		"stock": 40,
	}, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]any](t, rec)
	productID, _ := created["id"].(string)
	require.NotEmpty(t, productID)

	rec = app.do(t, http.MethodPut, "/api/admin/products/"+productID,
		map[string]any{"name": "Suture Kit v2", "price": 28.0}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/admin/products/"+productID, nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	deleted := cache.deletedKeys()
	assert.Len(t, deleted, 6) // three writes, two keys each
	assert.Contains(t, deleted, "cache:products")
	assert.Contains(t, deleted, "cache:admin_stats")

	// a later miss repopulates with the fresh state
	rec = app.do(t, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeBody[[]map[string]any](t, rec)
	assert.Len(t, products, 6) // 6 seeded + 1 created - 1 deactivated
}
