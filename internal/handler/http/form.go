package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/salesadmin/internal/models"
	"github.com/rookgm/salesadmin/internal/service"
)

// FormService is the dialog and list surface of one entity type
type FormService[T any] interface {
	// Entities returns the stored entities, newest first
	Entities() []T
	Dialog() service.Dialog[T]
	OpenCreate() service.Dialog[T]
	OpenEdit(id string) (service.Dialog[T], error)
	Close()
	Submit(ctx context.Context, fields T) (T, error)
	Delete(ctx context.Context, id string)
}

// FormHandler represents HTTP handler for the list, dialog and delete requests of one entity type
type FormHandler[T any] struct {
	svc FormService[T]
}

// NewFormHandler creates new FormHandler instance
func NewFormHandler[T any](svc FormService[T]) *FormHandler[T] {
	return &FormHandler[T]{svc: svc}
}

// Routes mounts the handler on r
func (fh *FormHandler[T]) Routes(r chi.Router) {
	r.Get("/", fh.List())
	r.Get("/form", fh.GetDialog())
	r.Post("/form/open", fh.OpenDialog())
	r.Post("/form/close", fh.CloseDialog())
	r.Post("/form/submit", fh.SubmitDialog())
	r.Delete("/{id}", fh.Delete())
}

// List returns every stored entity
// 200 - успешная обработка запроса.
func (fh *FormHandler[T]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, fh.svc.Entities())
	}
}

// GetDialog returns the dialog state
func (fh *FormHandler[T]) GetDialog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, fh.svc.Dialog())
	}
}

type openRequest struct {
	ID models.FlexID `json:"id"`
}

// OpenDialog opens the dialog, for editing when the body names an id
// 200 - диалог открыт;
// 400 - неверный формат запроса;
// 404 - сущность не найдена.
func (fh *FormHandler[T]) OpenDialog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if req.ID == "" {
			writeJSON(w, http.StatusOK, fh.svc.OpenCreate())
			return
		}

		d, err := fh.svc.OpenEdit(string(req.ID))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// CloseDialog closes the dialog and resets its fields
func (fh *FormHandler[T]) CloseDialog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fh.svc.Close()
		w.WriteHeader(http.StatusNoContent)
	}
}

// SubmitDialog sends the dialog fields to the backend
// 200 - сущность обновлена;
// 201 - сущность создана;
// 400 - неверные поля;
// 409 - диалог закрыт или отправка уже выполняется;
// 502 - сервер отклонил запрос или недоступен.
func (fh *FormHandler[T]) SubmitDialog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields T
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		creating := fh.svc.Dialog().Editing == nil

		entity, err := fh.svc.Submit(r.Context(), fields)
		if err != nil {
			writeError(w, err)
			return
		}

		status := http.StatusOK
		if creating {
			status = http.StatusCreated
		}
		writeJSON(w, status, entity)
	}
}

// Delete removes the entity at once, the backend delete completes in the background
// 202 - удаление принято.
func (fh *FormHandler[T]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fh.svc.Delete(r.Context(), chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusAccepted)
	}
}

// Lister returns a whole collection
type Lister[T any] interface {
	Snapshot() []T
}

// ListHandler serves a read only collection
func ListHandler[T any](src Lister[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, src.Snapshot())
	}
}
