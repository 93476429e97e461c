package orders

import (
	"strings"
	"time"
)

// Event is a single order event published by the order API
type Event struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Kind is the action an event asks for, independent of how the publisher spells the status.
type Kind string

const (
	KindUnknown Kind = ""
	KindCreated Kind = "created"
	KindCancel  Kind = "cancel"
	KindFail    Kind = "fail"
)

// оба написания встречаются в событиях заказчика, "deleted" приходит при удалении заказа
var statusKinds = map[string]Kind{
	"created":   KindCreated,
	"new":       KindCreated,
	"canceled":  KindCancel,
	"cancelled": KindCancel,
	"deleted":   KindCancel,
	"failed":    KindFail,
}

// Kind classifies the event status.
func (e Event) Kind() Kind {
	return statusKinds[strings.ToLower(strings.TrimSpace(e.Status))]
}
