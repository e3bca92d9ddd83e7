package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arsurgical/hub-backend/requests"
	"github.com/arsurgical/hub-backend/responses"
)

const (
	statsCacheKey = "cache:admin_stats"
	statsCacheTTL = 30 * time.Second
)

var orderStatuses = map[string]bool{
	"pending":    true,
	"processing": true,
	"shipped":    true,
	"delivered":  true,
	"cancelled":  true,
}

// AdminStats aggregates dashboard counters. The COALESCE keeps revenue
// numeric when there are no orders yet.
func (a *API) AdminStats(w http.ResponseWriter, r *http.Request) {
	if a.Cache != nil {
		if cached, found, err := a.Cache.Get(r.Context(), statsCacheKey); err == nil && found {
			responses.WriteJSONBytes(w, http.StatusOK, []byte(cached))
			return
		}
	}

	res, err := a.DB.Query(r.Context(), `
SELECT
  (SELECT COUNT(*) FROM users) AS total_users,
  (SELECT COUNT(*) FROM products) AS total_products,
  (SELECT COUNT(*) FROM orders) AS total_orders,
  (SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status != 'cancelled') AS total_revenue`)
	if err != nil {
		writeDBError(w, "admin stats", err)
		return
	}

	stats := map[string]any{
		"total_users":    int64(0),
		"total_products": int64(0),
		"total_orders":   int64(0),
		"total_revenue":  float64(0),
	}
	if len(res.Rows) > 0 {
		row := res.Rows[0]
		stats["total_users"] = rowInt64(row, "total_users")
		stats["total_products"] = rowInt64(row, "total_products")
		stats["total_orders"] = rowInt64(row, "total_orders")
		stats["total_revenue"] = rowFloat64(row, "total_revenue")
	}

	if a.Cache != nil {
		a.cacheJSON(r, statsCacheKey, stats, statsCacheTTL)
	}
	responses.EncodeWriteJSON(w, http.StatusOK, stats)
}

type productRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

// AdminListProducts includes inactive products, unlike the public list.
func (a *API) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := a.DB.Query(r.Context(), `
SELECT p.id, p.category_id, c.name AS category_name, p.name, p.description,
       p.price, p.stock, p.image_url, p.is_active
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
ORDER BY p.name`)
	if err != nil {
		writeDBError(w, "admin list products", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows)
}

func (a *API) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Price < 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "name is required and price must not be negative")
		return
	}

	productID := uuid.NewString()
	_, err := a.DB.Query(r.Context(), `
INSERT INTO products (id, category_id, name, description, price, stock, image_url, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
		productID, nullIfEmpty(req.CategoryID), req.Name, req.Description, req.Price, req.Stock, req.ImageURL)
	if err != nil {
		writeDBError(w, "admin create product", err)
		return
	}

	a.invalidateCatalogCache(r)
	responses.EncodeWriteJSON(w, http.StatusCreated, map[string]any{"id": productID, "name": req.Name})
}

func (a *API) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req productRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := a.DB.Query(r.Context(), `
UPDATE products
SET category_id = $1, name = $2, description = $3, price = $4, stock = $5, image_url = $6
WHERE id = $7`,
		nullIfEmpty(req.CategoryID), req.Name, req.Description, req.Price, req.Stock, req.ImageURL, id)
	if err != nil {
		writeDBError(w, "admin update product", err)
		return
	}
	if res.RowsAffected == 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "product not found")
		return
	}

	a.invalidateCatalogCache(r)
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

// AdminDeleteProduct deactivates instead of deleting so order history
// keeps its product references.
func (a *API) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	res, err := a.DB.Query(r.Context(), "UPDATE products SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		writeDBError(w, "admin delete product", err)
		return
	}
	if res.RowsAffected == 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "product not found")
		return
	}

	a.invalidateCatalogCache(r)
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (a *API) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := a.DB.Query(r.Context(), `
SELECT o.id, o.user_id, u.full_name AS customer, o.total_amount, o.status,
       o.payment_status, o.created_at
FROM orders o
LEFT JOIN users u ON u.id = o.user_id
ORDER BY o.created_at DESC`)
	if err != nil {
		writeDBError(w, "admin list orders", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (a *API) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req orderStatusRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !orderStatuses[req.Status] {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "unknown order status")
		return
	}

	res, err := a.DB.Query(r.Context(), "UPDATE orders SET status = $1 WHERE id = $2", req.Status, id)
	if err != nil {
		writeDBError(w, "admin update order", err)
		return
	}
	if res.RowsAffected == 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "order not found")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

func (a *API) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := a.DB.Query(r.Context(), `
SELECT u.id, u.full_name, u.email, u.phone, u.is_active, r.name AS role, u.created_at
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
ORDER BY u.created_at DESC`)
	if err != nil {
		writeDBError(w, "admin list users", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows)
}
