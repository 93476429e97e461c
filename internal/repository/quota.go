package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"drillflow-dispatch/internal/quota"
)

// QuotaRepo keeps daily accepted-order counters in Postgres so that several
// dispatcher instances share one cap per contractor.
type QuotaRepo struct{ db *pgxpool.Pool }

// NewQuotaRepo creates a new QuotaRepo.
func NewQuotaRepo(db *pgxpool.Pool) *QuotaRepo { return &QuotaRepo{db: db} }

// Count returns the number of orders accepted by the contractor on day.
func (r *QuotaRepo) Count(ctx context.Context, contractorID string, day quota.Day) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT count FROM contractor_daily_quota WHERE contractor_id=$1 AND day=$2::date`,
		contractorID, string(day),
	).Scan(&n)
	if err != nil {
		if IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("quota count %s/%s: %w", contractorID, day, err)
	}
	return n, nil
}

// TryIncrement bumps the counter in one statement when it is below limit.
func (r *QuotaRepo) TryIncrement(ctx context.Context, contractorID string, day quota.Day, limit int) (bool, int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		INSERT INTO contractor_daily_quota (contractor_id, day, count)
		SELECT $1, $2::date, 1 WHERE $3::int > 0
		ON CONFLICT (contractor_id, day) DO UPDATE
		SET count = contractor_daily_quota.count + 1
		WHERE contractor_daily_quota.count < $3::int
		RETURNING count`,
		contractorID, string(day), limit,
	).Scan(&n)
	if err == nil {
		return true, n, nil
	}
	if !IsNotFound(err) {
		return false, 0, fmt.Errorf("quota increment %s/%s: %w", contractorID, day, err)
	}

	n, err = r.Count(ctx, contractorID, day)
	if err != nil {
		return false, 0, err
	}
	return false, n, nil
}

// Decrement undoes an increment. Counters never go below zero.
func (r *QuotaRepo) Decrement(ctx context.Context, contractorID string, day quota.Day) error {
	_, err := r.db.Exec(ctx, `
		UPDATE contractor_daily_quota
		SET count = GREATEST(count - 1, 0)
		WHERE contractor_id = $1 AND day = $2::date`,
		contractorID, string(day))
	if err != nil {
		return fmt.Errorf("quota decrement %s/%s: %w", contractorID, day, err)
	}
	return nil
}

var _ quota.Tracker = (*QuotaRepo)(nil)
