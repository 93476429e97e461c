package repository

import (
	"github.com/jackc/pgx/v5"

	"drillflow-dispatch/internal/domain"
)

const contractorColumns = `id, user_id, name, specialization, work_radius_km, lat, lon, status, rating, daily_cap, orders_completed, ratings_count`

const orderColumns = `id, customer_id, title, description, address, specialization, lat, lon, status,
	COALESCE(contractor_id, ''), price, created_at, updated_at, completed_at, version`

func scanContractor(row pgx.Row) (*domain.Contractor, error) {
	var (
		c        domain.Contractor
		lat, lon *float64
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Specialization, &c.WorkRadiusKm,
		&lat, &lon, &c.Status, &c.Rating, &c.DailyCap, &c.OrdersCompleted, &c.RatingsCount)
	if err != nil {
		return nil, err
	}
	c.Location = toLocation(lat, lon)
	return &c, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o        domain.Order
		lat, lon *float64
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.Title, &o.Description, &o.Address, &o.Specialization,
		&lat, &lon, &o.Status, &o.ContractorID, &o.Price, &o.CreatedAt, &o.UpdatedAt, &o.CompletedAt, &o.Version)
	if err != nil {
		return nil, err
	}
	o.Location = toLocation(lat, lon)
	return &o, nil
}

func toLocation(lat, lon *float64) *domain.Location {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Location{Lat: *lat, Lon: *lon}
}

func fromLocation(l *domain.Location) (lat, lon *float64) {
	if l == nil {
		return nil, nil
	}
	la, lo := l.Lat, l.Lon
	return &la, &lo
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
