package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router with all API routes.
//
// The catalog is world-readable; catalog writes and every cart operation
// require a valid bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/products", h.getProducts)
		r.Get("/api/products/{id}", h.getProductByID)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/products", h.createProduct)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		r.Post("/api/cart", h.addToCart)
		r.Delete("/api/cart", h.removeFromCart)
		r.Get("/api/cart/{userID}", h.showCart)
	})

	return router
}
