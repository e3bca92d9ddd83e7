package handlers

import (
	"net/http"

	"github.com/arsurgical/hub-backend/responses"
	"github.com/arsurgical/hub-backend/routing"
)

// NewAPIRouter wires every route of the service onto one handler tree.
// Exported so the main binary and the handler tests share the exact
// same routing table.
func (a *API) NewAPIRouter() http.Handler {
	router := routing.NewBaseRouter()
	recoverWrap := routing.WrapperFunc(routing.RecoverWrapper)

	router.HandleFunc("GET /{$}", a.Health, recoverWrap)
	router.HandleFunc("GET /api/health", a.Health, recoverWrap)

	router.Group("/api", func(api *routing.RouteGroup) {
		api.HandleFunc("GET /products", a.ListProducts)
		api.HandleFunc("GET /products/{id}", a.GetProduct)
		api.HandleFunc("GET /categories", a.ListCategories)

		api.HandleFunc("POST /users/register", a.Register)
		api.HandleFunc("POST /users/login", a.Login, routing.WrapperFunc(a.ThrottleLogin))

		api.HandleFunc("POST /orders", a.CreateOrder)
		api.HandleFunc("GET /orders/user/{userID}", a.ListOrdersByUser)

		api.HandleFunc("POST /quotes", a.CreateQuote)

		api.HandleFunc("GET /reviews/{productID}", a.ListReviews)
		api.HandleFunc("POST /reviews", a.CreateReview)

		api.HandleFunc("GET /vacancies", a.ListVacancies)

		api.Group("/admin", func(admin *routing.RouteGroup) {
			admin.HandleFunc("GET /stats", a.AdminStats)
			admin.HandleFunc("GET /products", a.AdminListProducts)
			admin.HandleFunc("POST /products", a.AdminCreateProduct)
			admin.HandleFunc("PUT /products/{id}", a.AdminUpdateProduct)
			admin.HandleFunc("DELETE /products/{id}", a.AdminDeleteProduct)
			admin.HandleFunc("GET /orders", a.AdminListOrders)
			admin.HandleFunc("PUT /orders/{id}/status", a.AdminUpdateOrderStatus)
			admin.HandleFunc("GET /users", a.AdminListUsers)
			admin.HandleFunc("GET /categories", a.ListCategories)
		}, routing.WrapperFunc(a.RequireAdmin))
	}, recoverWrap)

	return router
}

// Health reports liveness, touching nothing but the process itself.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	responses.EncodeWriteJSON(w, http.StatusOK, responses.Message{Type: "info", Message: "ok"})
}
