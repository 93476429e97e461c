package domain

import "time"

// Order is a drilling or sewerage job placed by a customer.
type Order struct {
	ID             string
	CustomerID     string
	Title          string
	Description    string
	Address        string
	Specialization Specialization
	Location       *Location
	Status         OrderStatus
	ContractorID   string
	Price          *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
	// Version is bumped on every save; stores reject writes carrying a stale one.
	Version int64
}

// Assigned reports whether the order has a contractor.
func (o *Order) Assigned() bool {
	return o.ContractorID != ""
}
