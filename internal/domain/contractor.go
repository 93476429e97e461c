package domain

// DefaultDailyCap is the number of orders a contractor may accept per day
// when no explicit cap is stored.
const DefaultDailyCap = 2

// Contractor is a company or person that performs orders.
type Contractor struct {
	ID              string
	UserID          string
	Name            string
	Specialization  Specialization
	WorkRadiusKm    float64
	Location        *Location
	Status          ContractorStatus
	Rating          float64
	DailyCap        int
	OrdersCompleted int
	// RatingsCount is how many completed orders were rated; Rating averages over them.
	RatingsCount int
}

// Cap returns the effective daily cap.
func (c *Contractor) Cap() int {
	if c.DailyCap <= 0 {
		return DefaultDailyCap
	}
	return c.DailyCap
}

// PartialContractorUpdate carries optional fields to update a contractor.
// A nil field means “do not change” that attribute.
type PartialContractorUpdate struct {
	ID             string
	Name           *string
	Specialization *Specialization
	WorkRadiusKm   *float64
	Location       *Location
	Status         *ContractorStatus
	DailyCap       *int
}
