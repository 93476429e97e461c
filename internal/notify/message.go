// Package notify delivers offers and outcomes to the chat bot layer.
package notify

import (
	"math"
	"time"

	"drillflow-dispatch/internal/domain"
)

// OfferMessage is published for a contractor to accept or decline.
type OfferMessage struct {
	OfferID        string    `json:"offer_id"`
	OrderID        string    `json:"order_id"`
	ContractorID   string    `json:"contractor_id"`
	ChatID         string    `json:"chat_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Address        string    `json:"address,omitempty"`
	Specialization string    `json:"specialization"`
	Price          *float64  `json:"price,omitempty"`
	DistanceKm     *float64  `json:"distance_km,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
	Actions        []string  `json:"actions"`
}

// OutcomeMessage tells a customer or contractor how an order ended up.
type OutcomeMessage struct {
	OrderID      string    `json:"order_id"`
	Role         string    `json:"role"`
	PartyID      string    `json:"party_id"`
	Outcome      string    `json:"outcome"`
	Status       string    `json:"status"`
	ContractorID string    `json:"contractor_id,omitempty"`
	At           time.Time `json:"at"`
}

func newOfferMessage(c domain.Contractor, o domain.Order, offer domain.Offer) OfferMessage {
	msg := OfferMessage{
		OfferID:        offer.ID,
		OrderID:        o.ID,
		ContractorID:   c.ID,
		ChatID:         c.UserID,
		Title:          o.Title,
		Description:    o.Description,
		Address:        o.Address,
		Specialization: string(o.Specialization),
		Price:          o.Price,
		ExpiresAt:      offer.ExpiresAt,
		Actions:        []string{string(domain.ResponseAccept), string(domain.ResponseDecline)},
	}
	if !math.IsInf(offer.DistanceKm, 0) && !math.IsNaN(offer.DistanceKm) {
		d := math.Round(offer.DistanceKm*10) / 10
		msg.DistanceKm = &d
	}
	return msg
}

func newOutcomeMessage(p domain.Party, o domain.Order, outcome domain.Outcome, at time.Time) OutcomeMessage {
	return OutcomeMessage{
		OrderID:      o.ID,
		Role:         string(p.Role),
		PartyID:      p.ID,
		Outcome:      string(outcome),
		Status:       string(o.Status),
		ContractorID: o.ContractorID,
		At:           at,
	}
}
