package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/cafe-console/internal/report/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachRequestContext)
	r.Use(middlewares.Logging)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Health)
	r.Get("/menu", handler.Menu)
	r.Get("/orders", handler.Orders)
	r.Get("/orders/{id}", handler.GetOrderByID)
	r.Get("/orders/{id}/ticket", handler.GetTicket)
	r.Get("/reviews", handler.Reviews)
	r.Get("/sales", handler.Sales)
	return r
}
