package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminGateRejectsAnonymousAndCustomers(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/admin/stats", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	registerUser(t, app, "plain@example.com")
	customerToken := app.loginToken(t, "plain@example.com", "pw123456")
	rec = app.do(t, http.MethodGet, "/api/admin/stats", nil, customerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminStats(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.loginToken(t, testAdminEmail, testAdminPassword)

	rec := app.do(t, http.MethodGet, "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 1, stats["total_users"])
	assert.EqualValues(t, 6, stats["total_products"])
	assert.EqualValues(t, 0, stats["total_orders"])
	assert.EqualValues(t, 0, stats["total_revenue"])
}

func TestAdminProductLifecycle(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.loginToken(t, testAdminEmail, testAdminPassword)

	rec := app.do(t, http.MethodPost, "/api/admin/products", map[string]any{
		"name":        "Retractor Set",
		"description": "Self-retaining retractors, assorted sizes.",
		"price":       310.0,
		"stock":       12,
	}, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]any](t, rec)
	productID, _ := created["id"].(string)
	require.NotEmpty(t, productID)

	// visible in the public catalog
	rec = app.do(t, http.MethodGet, "/api/products/"+productID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/admin/products/"+productID, map[string]any{
		"name":  "Retractor Set v2",
		"price": 290.0,
		"stock": 15,
	}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/products/"+productID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Retractor Set v2", updated["name"])
	assert.InDelta(t, 290.0, updated["price"], 0.0001)

	// delete deactivates: gone from the public catalog, kept for admins
	rec = app.do(t, http.MethodDelete, "/api/admin/products/"+productID, nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/products/"+productID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/admin/products", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeBody[[]map[string]any](t, rec)
	assert.Len(t, all, 7)
}

func TestAdminProductNotFound(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.loginToken(t, testAdminEmail, testAdminPassword)

	rec := app.do(t, http.MethodPut, "/api/admin/products/no-such-id",
		map[string]any{"name": "X"}, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/admin/products/no-such-id", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminOrders(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.loginToken(t, testAdminEmail, testAdminPassword)
	userID := registerUser(t, app, "orderer@example.com")
	ids := productIDs(t, app)

	rec := app.do(t, http.MethodPost, "/api/orders", map[string]any{
		"user_id": userID,
		"items":   []map[string]any{{"product_id": ids[0], "quantity": 1, "price": 120.0}},
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]any](t, rec)
	orderID, _ := created["id"].(string)

	rec = app.do(t, http.MethodGet, "/api/admin/orders", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeBody[[]map[string]any](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, "pending", orders[0]["status"])

	rec = app.do(t, http.MethodPut, "/api/admin/orders/"+orderID+"/status",
		map[string]string{"status": "shipped"}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(t, http.MethodPut, "/api/admin/orders/"+orderID+"/status",
		map[string]string{"status": "teleported"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/orders/user/"+userID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	userOrders := decodeBody[[]map[string]any](t, rec)
	require.Len(t, userOrders, 1)
	assert.Equal(t, "shipped", userOrders[0]["status"])
}

func TestAdminListUsers(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.loginToken(t, testAdminEmail, testAdminPassword)
	registerUser(t, app, "extra@example.com")

	rec := app.do(t, http.MethodGet, "/api/admin/users", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decodeBody[[]map[string]any](t, rec)
	assert.Len(t, users, 2)

	roles := map[string]bool{}
	for _, u := range users {
		role, _ := u["role"].(string)
		roles[role] = true
	}
	assert.True(t, roles["admin"])
	assert.True(t, roles["customer"])
}
