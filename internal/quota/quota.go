// Package quota tracks how many orders each contractor accepted per calendar day.
package quota

import (
	"context"
	"time"
)

// Day is a calendar day key in YYYY-MM-DD form.
type Day string

const dayLayout = "2006-01-02"

// DayOf returns the day key of t in loc. A nil loc means UTC.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	return Day(t.In(loc).Format(dayLayout))
}

// Tracker is a per-contractor, per-day counter of accepted orders.
type Tracker interface {
	// Count returns the number of orders accepted by the contractor on day.
	Count(ctx context.Context, contractorID string, day Day) (int, error)
	// TryIncrement bumps the counter only when it is below limit and reports
	// whether it did, along with the resulting count.
	TryIncrement(ctx context.Context, contractorID string, day Day, limit int) (bool, int, error)
	// Decrement undoes a TryIncrement whose assignment did not go through.
	Decrement(ctx context.Context, contractorID string, day Day) error
}
