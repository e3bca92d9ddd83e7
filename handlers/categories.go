package handlers

import (
	"net/http"

	"github.com/arsurgical/hub-backend/responses"
)

func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := a.DB.Query(r.Context(),
		"SELECT id, name, description, image_url FROM categories ORDER BY name")
	if err != nil {
		writeDBError(w, "list categories", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows)
}
