package domain

type (
	// OrderStatus represents the lifecycle status of an order.
	OrderStatus string
	// ContractorStatus represents the account status of a contractor.
	ContractorStatus string
	// Specialization represents the kind of work an order needs or a contractor does.
	Specialization string
)

// List of possible order statuses
const (
	OrderCreated    OrderStatus = "created"
	OrderAssigned   OrderStatus = "assigned"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
	OrderFailed     OrderStatus = "failed"
)

// List of possible contractor statuses
const (
	ContractorPending ContractorStatus = "pending"
	ContractorActive  ContractorStatus = "active"
	ContractorBlocked ContractorStatus = "blocked"
	ContractorDeleted ContractorStatus = "deleted"
)

// List of possible specializations
const (
	SpecDrilling Specialization = "drilling"
	SpecSewerage Specialization = "sewerage"
	SpecBoth     Specialization = "both"
)

var allowedContractorStatuses = [...]ContractorStatus{
	ContractorPending, ContractorActive, ContractorBlocked, ContractorDeleted,
}

var allowedSpecializations = [...]Specialization{
	SpecDrilling, SpecSewerage, SpecBoth,
}

// forward edges of the happy path; cancelled and failed are handled separately.
var orderForward = map[OrderStatus]OrderStatus{
	OrderCreated:    OrderAssigned,
	OrderAssigned:   OrderInProgress,
	OrderInProgress: OrderCompleted,
}

// Valid checks if the OrderStatus is known.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCreated, OrderAssigned, OrderInProgress, OrderCompleted, OrderCancelled, OrderFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled || s == OrderFailed
}

// CanTransitionTo reports whether s -> next follows
// created -> assigned -> in_progress -> completed, with cancelled and failed
// reachable from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() || !s.Valid() {
		return false
	}
	if next == OrderCancelled || next == OrderFailed {
		return true
	}
	return orderForward[s] == next
}

// Valid checks if the ContractorStatus is valid
func (s ContractorStatus) Valid() bool {
	for _, v := range allowedContractorStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the Specialization is valid
func (s Specialization) Valid() bool {
	for _, v := range allowedSpecializations {
		if s == v {
			return true
		}
	}
	return false
}

// Matches reports whether a contractor with specialization s can take an order
// that needs want. "both" on the contractor side matches anything.
func (s Specialization) Matches(want Specialization) bool {
	return s == want || s == SpecBoth
}
