package kafka

import (
	"strings"
	"time"

	"drillflow-dispatch/internal/service/orders"
)

// EventDTO is the wire shape of an order event.
type EventDTO struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts the payload to orders.Event. The order API keys messages by
// order id, so the key fills in an order id missing from the body.
func ToDomain(dto EventDTO, key []byte) orders.Event {
	id := strings.TrimSpace(dto.OrderID)
	if id == "" {
		id = strings.TrimSpace(string(key))
	}
	return orders.Event{
		OrderID:   id,
		Status:    strings.TrimSpace(dto.Status),
		Reason:    strings.TrimSpace(dto.Reason),
		CreatedAt: dto.CreatedAt,
	}
}
