package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/omercengiz/warehouse-pro/docs"
	"github.com/omercengiz/warehouse-pro/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Get("/items", handlers.GetItemsHandler)
	r.Get("/items/search", handlers.SearchItemsHandler)
	r.Get("/items/stats", handlers.GetStatsHandler)
	r.Get("/items/{id}", handlers.GetItemByIDHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/items", handlers.CreateItemHandler)
		r.Put("/items/{id}", handlers.UpdateItemHandler)
		r.Delete("/items/{id}", handlers.DeleteItemHandler)
		r.Post("/items/{id}/increment", handlers.IncrementQuantityHandler)
		r.Post("/items/{id}/decrement", handlers.DecrementQuantityHandler)
		r.Post("/items/{id}/quantity", handlers.SetQuantityHandler)
		r.Post("/alerts/test", handlers.TestAlertHandler)
		r.Post("/alerts/resend", handlers.ResendAlertsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
