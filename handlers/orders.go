package handlers

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/arsurgical/hub-backend/requests"
	"github.com/arsurgical/hub-backend/responses"
)

type orderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	UserID          string             `json:"user_id"`
	Items           []orderItemRequest `json:"items"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
}

// CreateOrder inserts the order and all its items in one transaction:
// either the whole order lands or none of it does.
func (a *API) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || len(req.Items) == 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "user_id and items are required")
		return
	}
	for _, item := range req.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "each item needs a product_id and a positive quantity")
			return
		}
	}

	var total float64
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}

	ctx := r.Context()
	tx, err := a.DB.BeginTx(ctx)
	if err != nil {
		writeDBError(w, "order begin", err)
		return
	}

	orderID := uuid.NewString()
	res, err := tx.Query(ctx, `
INSERT INTO orders (id, user_id, total_amount, status, shipping_address, payment_method)
VALUES ($1, $2, $3, 'pending', $4, $5)
RETURNING id`,
		orderID, req.UserID, total, req.ShippingAddress, req.PaymentMethod)
	if err == nil {
		for _, item := range req.Items {
			if _, err = tx.Query(ctx,
				"INSERT INTO order_items (id, order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4, $5)",
				uuid.NewString(), orderID, item.ProductID, item.Quantity, item.Price); err != nil {
				break
			}
		}
	}
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Printf("[WARN] order rollback: %v", rbErr)
		}
		writeDBError(w, "order insert", err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		writeDBError(w, "order commit", err)
		return
	}

	// the RETURNING row confirms the id on every engine
	id := orderID
	if len(res.Rows) > 0 {
		id = rowString(res.Rows[0], "id")
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, map[string]any{
		"id":           id,
		"total_amount": total,
		"status":       "pending",
	})
}

func (a *API) ListOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	orders, err := a.DB.Query(r.Context(), `
SELECT id, total_amount, status, shipping_address, payment_method, payment_status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC`, userID)
	if err != nil {
		writeDBError(w, "list orders", err)
		return
	}

	out := make([]map[string]any, 0, len(orders.Rows))
	for _, order := range orders.Rows {
		items, err := a.DB.Query(r.Context(), `
SELECT oi.id, oi.product_id, p.name AS product_name, oi.quantity, oi.price
FROM order_items oi
LEFT JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1`, rowString(order, "id"))
		if err != nil {
			writeDBError(w, "list order items", err)
			return
		}
		entry := map[string]any(order)
		entry["items"] = items.Rows
		out = append(out, entry)
	}
	responses.EncodeWriteJSON(w, http.StatusOK, out)
}
