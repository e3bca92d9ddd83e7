package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/arsurgical/hub-backend/dbsetup"
	"github.com/arsurgical/hub-backend/requests"
	"github.com/arsurgical/hub-backend/responses"
	"github.com/arsurgical/hub-backend/sec"
)

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  publicUser `json:"user"`
}

type publicUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "full_name, email and password are required")
		return
	}

	existing, err := a.DB.Query(r.Context(), "SELECT id FROM users WHERE email = $1", req.Email)
	if err != nil {
		writeDBError(w, "register lookup", err)
		return
	}
	if len(existing.Rows) > 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "email already registered")
		return
	}

	hash, err := sec.HashPassword(req.Password)
	if err != nil {
		writeDBError(w, "register hash", err)
		return
	}

	userID := uuid.NewString()
	_, err = a.DB.Query(r.Context(),
		"INSERT INTO users (id, full_name, email, password_hash, phone, role_id) VALUES ($1, $2, $3, $4, $5, $6)",
		userID, req.FullName, req.Email, hash, req.Phone, dbsetup.CustomerRoleID)
	if err != nil {
		writeDBError(w, "register insert", err)
		return
	}

	token, err := sec.SignUserToken(a.JWTSecret, userID, "customer")
	if err != nil {
		writeDBError(w, "register token", err)
		return
	}

	responses.EncodeWriteJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  publicUser{ID: userID, FullName: req.FullName, Email: req.Email, Role: "customer"},
	})
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := requests.DecodeJSONBody(r, &req); err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	res, err := a.DB.Query(r.Context(), `
SELECT u.id, u.full_name, u.email, u.password_hash, r.name AS role
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
WHERE u.email = $1 AND u.is_active = TRUE`, req.Email)
	if err != nil {
		writeDBError(w, "login lookup", err)
		return
	}
	if len(res.Rows) == 0 {
		responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	row := res.Rows[0]
	if !sec.CheckPassword(rowString(row, "password_hash"), req.Password) {
		responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	userID := rowString(row, "id")
	role := rowString(row, "role")
	token, err := sec.SignUserToken(a.JWTSecret, userID, role)
	if err != nil {
		writeDBError(w, "login token", err)
		return
	}

	responses.EncodeWriteJSON(w, http.StatusOK, authResponse{
		Token: token,
		User: publicUser{
			ID:       userID,
			FullName: rowString(row, "full_name"),
			Email:    rowString(row, "email"),
			Role:     role,
		},
	})
}
