package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/domain"
)

// OrderRepo represents order repository. Orders are created by the order API;
// this service only moves them through their lifecycle.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// GetOrder returns the order or apperr.ErrNotFound.
func (r *OrderRepo) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// SaveOrder writes the lifecycle columns when the stored version still equals
// o.Version, then bumps o.Version. A concurrent writer yields apperr.ErrConflict.
func (r *OrderRepo) SaveOrder(ctx context.Context, o *domain.Order) error {
	var version int64
	err := r.db.QueryRow(ctx, `
		UPDATE orders
		SET status = $3, contractor_id = $4, updated_at = $5, completed_at = $6, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version`,
		o.ID, o.Version, o.Status, nullIfEmpty(o.ContractorID), o.UpdatedAt, o.CompletedAt,
	).Scan(&version)
	if err != nil {
		if IsForeignKey(err) {
			return fmt.Errorf("save order %s: contractor %s: %w", o.ID, o.ContractorID, apperr.ErrNotFound)
		}
		if !IsNotFound(err) {
			return fmt.Errorf("save order %s: %w", o.ID, err)
		}
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`, o.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check order %s: %w", o.ID, err)
		}
		if !exists {
			return apperr.ErrNotFound
		}
		return apperr.ErrConflict
	}
	o.Version = version
	return nil
}
