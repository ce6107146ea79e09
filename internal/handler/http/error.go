package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rookgm/salesadmin/internal/logger"
	"github.com/rookgm/salesadmin/internal/models"
	"go.uber.org/zap"
)

// writeError maps a service error to its status code
// 400 - неверные поля или неизвестная платформа/статус;
// 404 - сущность не найдена;
// 409 - диалог закрыт или отправка уже выполняется;
// 502 - сервер отклонил запрос или недоступен;
// 500 - внутренняя ошибка сервера.
func writeError(w http.ResponseWriter, err error) {
	var (
		remoteErr    *models.RemoteError
		transportErr *models.TransportError
		decodeErr    *models.DecodeError
	)

	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrUnknownPlatform),
		errors.Is(err, models.ErrUnknownStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, models.ErrDialogClosed),
		errors.Is(err, models.ErrSubmitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &remoteErr),
		errors.As(err, &transportErr),
		errors.As(err, &decodeErr):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		logger.Log.Error("unexpected error", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debug("cannot encode response", zap.Error(err))
	}
}
