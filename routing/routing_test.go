package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagWrapper(tag string, log *[]string) HandlerWrapper {
	return WrapperFunc(func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*log = append(*log, tag)
			inner.ServeHTTP(w, r)
		})
	})
}

func TestBaseRouterMethodPatterns(t *testing.T) {
	router := NewBaseRouter()
	router.HandleFunc("GET /things", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGroupPrefixesMethodPatterns(t *testing.T) {
	router := NewBaseRouter()
	router.Group("/api", func(api *RouteGroup) {
		api.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.PathValue("id")))
		})
		api.Group("/admin", func(admin *RouteGroup) {
			admin.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/i42", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "i42", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/i42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Group wrappers run outside per-route wrappers, outermost group first.
func TestWrapperOrdering(t *testing.T) {
	var log []string
	router := NewBaseRouter()
	router.Group("/api", func(api *RouteGroup) {
		api.Group("/admin", func(admin *RouteGroup) {
			admin.HandleFunc("GET /x", func(w http.ResponseWriter, r *http.Request) {
				log = append(log, "handler")
			}, tagWrapper("route", &log))
		}, tagWrapper("admin", &log))
	}, tagWrapper("api", &log))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/x", nil))
	assert.Equal(t, []string{"api", "admin", "route", "handler"}, log)
}

func TestRecoverWrapper(t *testing.T) {
	handler := RecoverWrapper(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
