package service

import (
	"strings"

	"github.com/rookgm/salesadmin/internal/models"
	"github.com/rookgm/salesadmin/internal/store"
)

// NewCustomerForm creates the customer form. It closes as soon as it is submitted.
func NewCustomerForm(remote Remote[models.Customer], coll *store.Collection[models.Customer], alerts Alerter) *Form[models.Customer] {
	return NewForm(FormConfig[models.Customer]{
		Name:  "customer",
		Close: CloseOnSubmit,
		Messages: Messages{
			CreateRejected:    FailureText{Title: "Cliente no creado", Fallback: "Error al crear el cliente"},
			CreateUnreachable: FailureText{Fallback: "Error al crear el cliente"},
			UpdateRejected:    FailureText{Title: "Cliente no actualizado", Fallback: "Error al actualizar el cliente"},
			UpdateUnreachable: FailureText{Title: "Error al actualizar el cliente", Fallback: "El cliente no pudo ser actualizado"},
		},
		Blank: func() models.Customer {
			return models.Customer{Active: true}
		},
		Prepare: func(c models.Customer, _ bool) (models.Customer, error) {
			c.Name = strings.TrimSpace(c.Name)
			c.Phone = strings.TrimSpace(c.Phone)
			c.LastName = nullIfEmpty(c.LastName)
			c.Address = nullIfEmpty(c.Address)
			c.Email = nullIfEmpty(c.Email)
			c.Note = nullIfEmpty(c.Note)
			return c, models.Validate(c)
		},
	}, remote, coll, alerts)
}

// NewSellerForm creates the seller form. It closes as soon as it is submitted.
func NewSellerForm(remote Remote[models.Seller], coll *store.Collection[models.Seller], alerts Alerter) *Form[models.Seller] {
	return NewForm(FormConfig[models.Seller]{
		Name:  "seller",
		Close: CloseOnSubmit,
		Messages: Messages{
			CreateRejected:    FailureText{Title: "Vendedor no creado", Fallback: "Error al crear el vendedor"},
			CreateUnreachable: FailureText{Fallback: "Error al crear el vendedor"},
			UpdateRejected:    FailureText{Title: "Vendedor no actualizado", Fallback: "Error al actualizar el vendedor"},
			UpdateUnreachable: FailureText{Title: "Error al actualizar el vendedor", Fallback: "El vendedor no pudo ser actualizado"},
		},
		Blank: func() models.Seller {
			return models.Seller{Active: true}
		},
		Prepare: func(s models.Seller, _ bool) (models.Seller, error) {
			s.Name = strings.TrimSpace(s.Name)
			s.Phone = strings.TrimSpace(s.Phone)
			s.LastName = nullIfEmpty(s.LastName)
			s.Address = nullIfEmpty(s.Address)
			s.Email = nullIfEmpty(s.Email)
			return s, models.Validate(s)
		},
	}, remote, coll, alerts)
}

// NewPlatformForm creates the platform form. It closes once the backend has answered.
func NewPlatformForm(remote Remote[models.Platform], coll *store.Collection[models.Platform], alerts Alerter) *Form[models.Platform] {
	return NewForm(FormConfig[models.Platform]{
		Name:  "platform",
		Close: CloseOnConfirm,
		Messages: Messages{
			CreateRejected:    FailureText{Title: "Plataforma no creada", Fallback: "Error al guardar la plataforma"},
			CreateUnreachable: FailureText{Fallback: "Error al guardar la plataforma"},
			UpdateRejected:    FailureText{Title: "Plataforma no actualizada", Fallback: "Error al guardar la plataforma"},
			UpdateUnreachable: FailureText{Fallback: "Error al guardar la plataforma"},
		},
		Blank: func() models.Platform {
			return models.Platform{Active: true}
		},
		Prepare: func(p models.Platform, _ bool) (models.Platform, error) {
			p.Name = strings.TrimSpace(p.Name)
			return p, models.Validate(p)
		},
	}, remote, coll, alerts)
}

// nullIfEmpty maps an empty optional text to null, the way the backend expects it
func nullIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
