package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/arsurgical/hub-backend/requests"
	"github.com/arsurgical/hub-backend/responses"
)

type createReviewRequest struct {
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
}

func (a *API) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")

	res, err := a.DB.Query(r.Context(), `
SELECT pr.id, pr.rating, pr.comment, pr.created_at, u.full_name AS reviewer
FROM product_reviews pr
LEFT JOIN users u ON u.id = pr.user_id
WHERE pr.product_id = $1
ORDER BY pr.created_at DESC`, productID)
	if err != nil {
		writeDBError(w, "list reviews", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows)
}

func (a *API) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" || req.UserID == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "product_id and user_id are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	reviewID := uuid.NewString()
	_, err := a.DB.Query(r.Context(),
		"INSERT INTO product_reviews (id, product_id, user_id, rating, comment) VALUES ($1, $2, $3, $4, $5)",
		reviewID, req.ProductID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		writeDBError(w, "create review", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, map[string]any{"id": reviewID, "rating": req.Rating})
}
