package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rookgm/salesadmin/internal/models"
	"github.com/rookgm/salesadmin/internal/query"
	"github.com/rookgm/salesadmin/internal/service"
)

type OrderService interface {
	// View returns the filtered orders and the summary over all orders
	View(c query.Criteria) ([]models.Order, query.Stats)
	// Dialog returns the order dialog state
	Dialog() service.Dialog[models.Order]
	// PlatformOptions returns the platforms offered by the order dialog
	PlatformOptions() []models.Platform
	// StatusOptions returns the statuses offered by the order dialog
	StatusOptions() []models.Status
	// ChoosePlatform records the platform choice of the open dialog
	ChoosePlatform(id string) (service.Dialog[models.Order], error)
	// ChooseStatus records the status choice of the open dialog
	ChooseStatus(id string) (service.Dialog[models.Order], error)
}

// OrderHandler represents HTTP handler for the order table and the order dialog selects
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type listOrdersResponse struct {
	Orders []models.Order `json:"orders"`
	Stats  query.Stats    `json:"stats"`
}

// ListOrders returns the orders matching the search, status and platform filters with the summary cards
// 200 - успешная обработка запроса.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		c := query.Criteria{
			Search:   q.Get("search"),
			Status:   q.Get("status"),
			Platform: q.Get("platform"),
		}

		orders, stats := oh.svc.View(c.Normalize())

		writeJSON(w, http.StatusOK, listOrdersResponse{Orders: orders, Stats: stats})
	}
}

type orderDialogResponse struct {
	Dialog    service.Dialog[models.Order] `json:"dialog"`
	Platforms []models.Platform            `json:"platforms"`
	Statuses  []models.Status              `json:"statuses"`
}

// GetDialog returns the order dialog with its select options
func (oh *OrderHandler) GetDialog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, orderDialogResponse{
			Dialog:    oh.svc.Dialog(),
			Platforms: oh.svc.PlatformOptions(),
			Statuses:  oh.svc.StatusOptions(),
		})
	}
}

type chooseRequest struct {
	PlatformID models.FlexID `json:"platformId"`
	StatusID   models.FlexID `json:"statusId"`
}

// Choose sets the platform and/or status selects of the open order dialog
// 200 - успешная обработка запроса;
// 400 - неверный формат запроса или неизвестная платформа/статус;
// 409 - диалог закрыт.
func (oh *OrderHandler) Choose() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chooseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		d := oh.svc.Dialog()
		var err error
		if req.PlatformID != "" {
			if d, err = oh.svc.ChoosePlatform(string(req.PlatformID)); err != nil {
				writeError(w, err)
				return
			}
		}
		if req.StatusID != "" {
			if d, err = oh.svc.ChooseStatus(string(req.StatusID)); err != nil {
				writeError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, d)
	}
}
