package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/arsurgical/hub-backend/requests"
	"github.com/arsurgical/hub-backend/responses"
)

type createQuoteRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// CreateQuote records a quotation request from the public site.
func (a *API) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "message is required")
		return
	}

	quoteID := uuid.NewString()
	_, err := a.DB.Query(r.Context(),
		"INSERT INTO quotes (id, user_id, message, status) VALUES ($1, $2, $3, 'new')",
		quoteID, nullIfEmpty(req.UserID), req.Message)
	if err != nil {
		writeDBError(w, "create quote", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, map[string]string{"id": quoteID, "status": "new"})
}
