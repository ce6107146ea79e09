// Package handler assembles the console HTTP router.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	api "github.com/rookgm/salesadmin/internal/handler/http"
	"github.com/rookgm/salesadmin/internal/middleware"
	"github.com/rookgm/salesadmin/internal/models"
	"go.uber.org/zap"
)

// Handlers are the endpoint groups mounted by New
type Handlers struct {
	Orders    *api.OrderHandler
	OrderForm *api.FormHandler[models.Order]
	Customers *api.FormHandler[models.Customer]
	Sellers   *api.FormHandler[models.Seller]
	Platforms *api.FormHandler[models.Platform]
	Statuses  api.Lister[models.Status]
	Alerts    *api.AlertHandler
	Loader    api.Loader
	WS        *api.WSHandler
	Gatherer  prometheus.Gatherer
	AccessLog *zap.Logger
}

// New builds the router
func New(h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(middleware.Logging(h.AccessLog))
	router.Use(chimw.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/orders", h.Orders.ListOrders())
		r.Get("/orders/form", h.Orders.GetDialog())
		r.Patch("/orders/form", h.Orders.Choose())
		r.Post("/orders/form/open", h.OrderForm.OpenDialog())
		r.Post("/orders/form/close", h.OrderForm.CloseDialog())
		r.Post("/orders/form/submit", h.OrderForm.SubmitDialog())
		r.Delete("/orders/{id}", h.OrderForm.Delete())

		r.Route("/customers", h.Customers.Routes)
		r.Route("/sellers", h.Sellers.Routes)
		r.Route("/platforms", h.Platforms.Routes)
		r.Get("/statuses", api.ListHandler(h.Statuses))

		r.Get("/alert", h.Alerts.GetAlert())
		r.Delete("/alert", h.Alerts.DismissAlert())

		r.Post("/reload", api.Reload(h.Loader))
	})

	router.Get("/ws", h.WS.Socket())
	router.Handle("/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))

	return router
}
