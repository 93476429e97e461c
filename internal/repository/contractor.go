package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/domain"
)

// ContractorRepo represents contractor repository.
type ContractorRepo struct{ db *pgxpool.Pool }

// NewContractorRepo creates a new ContractorRepo.
func NewContractorRepo(db *pgxpool.Pool) *ContractorRepo { return &ContractorRepo{db: db} }

// GetContractor returns the contractor or apperr.ErrNotFound.
func (r *ContractorRepo) GetContractor(ctx context.Context, id string) (*domain.Contractor, error) {
	c, err := scanContractor(r.db.QueryRow(ctx,
		`SELECT `+contractorColumns+` FROM contractors WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get contractor %s: %w", id, err)
	}
	return c, nil
}

// ListActiveBySpecialization returns active contractors able to do spec work,
// including those registered for both kinds.
func (r *ContractorRepo) ListActiveBySpecialization(ctx context.Context, spec domain.Specialization) ([]domain.Contractor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+contractorColumns+`
		FROM contractors
		WHERE status = $1 AND (specialization = $2 OR specialization = $3)
		ORDER BY rating DESC, id`,
		domain.ContractorActive, spec, domain.SpecBoth)
	if err != nil {
		return nil, fmt.Errorf("list active contractors: %w", err)
	}
	defer rows.Close()

	var out []domain.Contractor
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// List returns contractors ordered by id. If limit/offset are nil, returns the full list.
func (r *ContractorRepo) List(ctx context.Context, limit, offset *int) ([]domain.Contractor, error) {
	q := `SELECT ` + contractorColumns + ` FROM contractors ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Contractor, 0, capacity)
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Create inserts a contractor with a caller-assigned id.
func (r *ContractorRepo) Create(ctx context.Context, c *domain.Contractor) error {
	lat, lon := fromLocation(c.Location)
	_, err := r.db.Exec(ctx, `
		INSERT INTO contractors(id, user_id, name, specialization, work_radius_km, lat, lon, status, rating, daily_cap, orders_completed, ratings_count)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.UserID, c.Name, c.Specialization, c.WorkRadiusKm, lat, lon, c.Status, c.Rating, c.DailyCap, c.OrdersCompleted, c.RatingsCount)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create contractor: %w", err)
	}
	return nil
}

// SaveContractor overwrites the mutable columns of an existing contractor.
func (r *ContractorRepo) SaveContractor(ctx context.Context, c *domain.Contractor) error {
	lat, lon := fromLocation(c.Location)
	ct, err := r.db.Exec(ctx, `
		UPDATE contractors
		SET name = $2, specialization = $3, work_radius_km = $4, lat = $5, lon = $6,
		    status = $7, rating = $8, daily_cap = $9, orders_completed = $10,
		    ratings_count = $11, updated_at = now()
		WHERE id = $1`,
		c.ID, c.Name, c.Specialization, c.WorkRadiusKm, lat, lon, c.Status, c.Rating, c.DailyCap, c.OrdersCompleted, c.RatingsCount)
	if err != nil {
		return fmt.Errorf("save contractor %s: %w", c.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// UpdatePartial applies a partial update to a contractor and returns true if a row was affected.
func (r *ContractorRepo) UpdatePartial(ctx context.Context, u domain.PartialContractorUpdate) (bool, error) {
	lat, lon := fromLocation(u.Location)
	ct, err := r.db.Exec(ctx, `
        UPDATE contractors
        SET
            name           = COALESCE($2, name),
            specialization = COALESCE($3, specialization),
            work_radius_km = COALESCE($4, work_radius_km),
            lat            = COALESCE($5, lat),
            lon            = COALESCE($6, lon),
            status         = COALESCE($7, status),
            daily_cap      = COALESCE($8, daily_cap),
            updated_at     = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Specialization, u.WorkRadiusKm, lat, lon, u.Status, u.DailyCap)

	if err != nil {
		return false, fmt.Errorf("update contractor %s: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
