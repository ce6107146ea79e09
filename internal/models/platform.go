package models

import "github.com/shopspring/decimal"

// Platform is a sales channel with its fee and commission rates
type Platform struct {
	ID               FlexID          `json:"id,omitempty"`
	Name             string          `json:"name" validate:"required"`
	CustomerFee      decimal.Decimal `json:"customerFee" validate:"gte=0"`
	SellerCommission decimal.Decimal `json:"sellerCommission" validate:"gte=0"`
	Active           bool            `json:"active"`
}

func (p Platform) Key() string {
	return string(p.ID)
}

func (p Platform) WithKey(key string) Platform {
	p.ID = FlexID(key)
	return p
}

// Status is an order status offered to order forms
type Status struct {
	ID     FlexID `json:"id,omitempty"`
	Name   string `json:"name" validate:"required"`
	Active bool   `json:"active"`
}

func (s Status) Key() string {
	return string(s.ID)
}

func (s Status) WithKey(key string) Status {
	s.ID = FlexID(key)
	return s
}
