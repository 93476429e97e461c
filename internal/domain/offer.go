package domain

import "time"

// Offer is a time-bounded proposal of one order to one contractor.
type Offer struct {
	ID           string
	OrderID      string
	ContractorID string
	Rank         int
	// DistanceKm is +Inf when either side has no usable location.
	DistanceKm float64
	CreatedAt  time.Time
	ExpiresAt  time.Time
	// Delivered is set once the notifier acknowledged the offer.
	Delivered bool
}

// Expired reports whether the offer can no longer be honored at t.
func (o Offer) Expired(t time.Time) bool {
	return t.After(o.ExpiresAt)
}

// ResponseKind is a contractor's answer to an offer.
type ResponseKind string

// Possible contractor answers.
const (
	ResponseAccept  ResponseKind = "accept"
	ResponseDecline ResponseKind = "decline"
)

// Valid checks if the ResponseKind is known.
func (k ResponseKind) Valid() bool {
	return k == ResponseAccept || k == ResponseDecline
}

// Response is an inbound accept/decline signal correlated by order and contractor.
type Response struct {
	OrderID      string
	ContractorID string
	Kind         ResponseKind
	At           time.Time
}

// ResponseOutcome is what the responder is told after a response was processed.
type ResponseOutcome string

// Possible response outcomes.
const (
	OutcomeAccepted      ResponseOutcome = "accepted"
	OutcomeDeclined      ResponseOutcome = "declined"
	OutcomeTooLate       ResponseOutcome = "too_late"
	OutcomeQuotaExceeded ResponseOutcome = "quota_exceeded"
)

// PartyRole tells who an outcome notification is addressed to.
type PartyRole string

// Outcome notification recipients.
const (
	PartyCustomer   PartyRole = "customer"
	PartyContractor PartyRole = "contractor"
)

// Party is the recipient of an outcome notification.
type Party struct {
	Role PartyRole
	ID   string
}

// Outcome is the final word on an order sent to customers and contractors.
type Outcome string

// Outcomes reported through the notifier.
const (
	OutcomeAssigned      Outcome = "assigned"
	OutcomeOfferWithdraw Outcome = "offer_withdrawn"
	OutcomeUndistributed Outcome = "undistributed"
	OutcomeCancelled     Outcome = "cancelled"
	OutcomeFailed        Outcome = "failed"
	OutcomeCompleted     Outcome = "completed"
)

// RunResult summarizes how a distribution run started.
type RunResult struct {
	OrderID   string
	Started   bool
	Offered   int
	Delivered int
	Failed    int
}
