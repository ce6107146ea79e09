package handler

import (
	"context"
	"net/http"

	"github.com/rookgm/salesadmin/internal/models"
)

type AlertService interface {
	Current() (models.Alert, bool)
	Dismiss()
}

// AlertHandler represents HTTP handler for the transient alert
type AlertHandler struct {
	svc AlertService
}

// NewAlertHandler creates new AlertHandler instance
func NewAlertHandler(svc AlertService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// GetAlert returns the alert being shown
// 200 - успешная обработка запроса;
// 204 - нет активного уведомления.
func (ah *AlertHandler) GetAlert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := ah.svc.Current()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// DismissAlert hides the alert before it expires
func (ah *AlertHandler) DismissAlert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.svc.Dismiss()
		w.WriteHeader(http.StatusNoContent)
	}
}

type Loader interface {
	Load(ctx context.Context) error
}

// Reload re-runs the bulk load of every collection
// 204 - коллекции перезагружены;
// 500 - внутренняя ошибка сервера.
func Reload(l Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := l.Load(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
