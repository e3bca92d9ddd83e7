package handlers

import (
	"net/http"

	"github.com/arsurgical/hub-backend/responses"
)

func (a *API) ListVacancies(w http.ResponseWriter, r *http.Request) {
	res, err := a.DB.Query(r.Context(), `
SELECT v.id, v.position, v.location, v.salary_range, c.title AS career_title
FROM vacancies v
LEFT JOIN careers c ON c.id = v.career_id
WHERE v.is_active = TRUE
ORDER BY v.created_at DESC`)
	if err != nil {
		writeDBError(w, "list vacancies", err)
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, res.Rows)
}
