package handlers

import (
	"time"

	"drillflow-dispatch/internal/domain"
)

type locationDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type orderDTO struct {
	ID             string                `json:"id"`
	CustomerID     string                `json:"customer_id"`
	Title          string                `json:"title"`
	Specialization domain.Specialization `json:"specialization"`
	Status         domain.OrderStatus    `json:"status"`
	ContractorID   string                `json:"contractor_id,omitempty"`
	Price          *float64              `json:"price,omitempty"`
	UpdatedAt      time.Time             `json:"updated_at"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
}

type offerDTO struct {
	ID           string    `json:"id"`
	ContractorID string    `json:"contractor_id"`
	Rank         int       `json:"rank"`
	DistanceKm   *float64  `json:"distance_km,omitempty"`
	Delivered    bool      `json:"delivered"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type runResultDTO struct {
	OrderID   string `json:"order_id"`
	Offered   int    `json:"offered"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
}

type respondRequest struct {
	Kind domain.ResponseKind `json:"kind"`
	At   *time.Time          `json:"at,omitempty"`
}

type respondResponse struct {
	Outcome domain.ResponseOutcome `json:"outcome"`
}

type failRequest struct {
	Reason string `json:"reason"`
}

type progressRequest struct {
	ContractorID string   `json:"contractor_id"`
	Rating       *float64 `json:"rating,omitempty"`
}

type contractorDTO struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"user_id"`
	Name            string                  `json:"name"`
	Specialization  domain.Specialization   `json:"specialization"`
	WorkRadiusKm    float64                 `json:"work_radius_km"`
	Location        *locationDTO            `json:"location,omitempty"`
	Status          domain.ContractorStatus `json:"status"`
	Rating          float64                 `json:"rating"`
	DailyCap        int                     `json:"daily_cap"`
	OrdersCompleted int                     `json:"orders_completed"`
	RatingsCount    int                     `json:"ratings_count"`
}

type createContractorRequest struct {
	UserID         string                  `json:"user_id"`
	Name           string                  `json:"name"`
	Specialization domain.Specialization   `json:"specialization"`
	WorkRadiusKm   float64                 `json:"work_radius_km"`
	Location       *locationDTO            `json:"location,omitempty"`
	Status         domain.ContractorStatus `json:"status,omitempty"`
	DailyCap       int                     `json:"daily_cap,omitempty"`
}

type updateContractorRequest struct {
	Name           *string                  `json:"name,omitempty"`
	Specialization *domain.Specialization   `json:"specialization,omitempty"`
	WorkRadiusKm   *float64                 `json:"work_radius_km,omitempty"`
	Location       *locationDTO             `json:"location,omitempty"`
	Status         *domain.ContractorStatus `json:"status,omitempty"`
	DailyCap       *int                     `json:"daily_cap,omitempty"`
}
