package handlers

import (
	"math"

	"drillflow-dispatch/internal/domain"
)

func (l *locationDTO) toModel() *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{Lat: l.Lat, Lon: l.Lon}
}

func locationToResponse(l *domain.Location) *locationDTO {
	if l == nil {
		return nil
	}
	return &locationDTO{Lat: l.Lat, Lon: l.Lon}
}

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		Title:          o.Title,
		Specialization: o.Specialization,
		Status:         o.Status,
		ContractorID:   o.ContractorID,
		Price:          o.Price,
		UpdatedAt:      o.UpdatedAt,
		CompletedAt:    o.CompletedAt,
	}
}

func offersToResponse(list []domain.Offer) []offerDTO {
	out := make([]offerDTO, 0, len(list))
	for _, o := range list {
		dto := offerDTO{
			ID:           o.ID,
			ContractorID: o.ContractorID,
			Rank:         o.Rank,
			Delivered:    o.Delivered,
			CreatedAt:    o.CreatedAt,
			ExpiresAt:    o.ExpiresAt,
		}
		// расстояние неизвестно, если у кого-то нет координат
		if !math.IsInf(o.DistanceKm, 0) && !math.IsNaN(o.DistanceKm) {
			d := o.DistanceKm
			dto.DistanceKm = &d
		}
		out = append(out, dto)
	}
	return out
}

func runResultToResponse(r domain.RunResult) runResultDTO {
	return runResultDTO{
		OrderID:   r.OrderID,
		Offered:   r.Offered,
		Delivered: r.Delivered,
		Failed:    r.Failed,
	}
}

func (req createContractorRequest) toModel() *domain.Contractor {
	return &domain.Contractor{
		UserID:         req.UserID,
		Name:           req.Name,
		Specialization: req.Specialization,
		WorkRadiusKm:   req.WorkRadiusKm,
		Location:       req.Location.toModel(),
		Status:         req.Status,
		DailyCap:       req.DailyCap,
	}
}

func (req updateContractorRequest) toModel(id string) domain.PartialContractorUpdate {
	return domain.PartialContractorUpdate{
		ID:             id,
		Name:           req.Name,
		Specialization: req.Specialization,
		WorkRadiusKm:   req.WorkRadiusKm,
		Location:       req.Location.toModel(),
		Status:         req.Status,
		DailyCap:       req.DailyCap,
	}
}

func contractorToResponse(c domain.Contractor) contractorDTO {
	return contractorDTO{
		ID:              c.ID,
		UserID:          c.UserID,
		Name:            c.Name,
		Specialization:  c.Specialization,
		WorkRadiusKm:    c.WorkRadiusKm,
		Location:        locationToResponse(c.Location),
		Status:          c.Status,
		Rating:          c.Rating,
		DailyCap:        c.DailyCap,
		OrdersCompleted: c.OrdersCompleted,
		RatingsCount:    c.RatingsCount,
	}
}

func contractorsToResponse(list []domain.Contractor) []contractorDTO {
	out := make([]contractorDTO, 0, len(list))
	for _, c := range list {
		out = append(out, contractorToResponse(c))
	}
	return out
}
