package models

import "strconv"

// Customer is customer entity
type Customer struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name" validate:"required"`
	LastName *string `json:"lastName"`
	Address  *string `json:"address"`
	Phone    string  `json:"phone" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Note     *string `json:"note"`
	Active   bool    `json:"active"`
}

func (c Customer) Key() string {
	return strconv.FormatInt(c.ID, 10)
}

func (c Customer) WithKey(key string) Customer {
	c.ID, _ = strconv.ParseInt(key, 10, 64)
	return c
}

// Seller is seller entity, shaped like Customer without a note
type Seller struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name" validate:"required"`
	LastName *string `json:"lastName"`
	Address  *string `json:"address"`
	Phone    string  `json:"phone" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Active   bool    `json:"active"`
}

func (s Seller) Key() string {
	return strconv.FormatInt(s.ID, 10)
}

func (s Seller) WithKey(key string) Seller {
	s.ID, _ = strconv.ParseInt(key, 10, 64)
	return s
}
