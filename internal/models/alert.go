package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertError   AlertType = "error"
	AlertSuccess AlertType = "success"
)

// Alert is a transient user notification
type Alert struct {
	ID       uuid.UUID `json:"id"`
	Type     AlertType `json:"type"`
	Title    string    `json:"title,omitempty"`
	Message  string    `json:"message"`
	RaisedAt time.Time `json:"raisedAt"`
}
