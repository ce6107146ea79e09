package models

import "github.com/shopspring/decimal"

// well known status names counted by the dashboard
const (
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// Order is order entity. ID is assigned by the backend and is empty until persisted.
type Order struct {
	ID           string          `json:"id,omitempty"`
	DateTime     Timestamp       `json:"dateTime" validate:"required"`
	PlatformID   FlexID          `json:"platformId" validate:"required"`
	PlatformName string          `json:"platformName,omitempty"`
	StatusID     FlexID          `json:"statusId" validate:"required"`
	StatusName   string          `json:"statusName,omitempty"`
	TotalAmount  decimal.Decimal `json:"totalAmount" validate:"gte=0"`
}

func (o Order) Key() string {
	return o.ID
}

func (o Order) WithKey(key string) Order {
	o.ID = key
	return o
}
