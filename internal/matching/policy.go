// Package matching selects and orders the contractors an order is offered to.
package matching

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/geo"
	"drillflow-dispatch/internal/quota"
)

// RankMode selects how eligible contractors are ordered.
type RankMode string

// Supported ranking modes.
const (
	// RankByRating sorts by rating, highest first.
	RankByRating RankMode = "rating"
	// RankWeighted sorts by rating/(distance_km+1) so near contractors win ties in quality.
	RankWeighted RankMode = "weighted"
)

// Valid checks if the RankMode is known.
func (m RankMode) Valid() bool {
	return m == RankByRating || m == RankWeighted
}

// QuotaReader is the read side of the daily quota tracker.
type QuotaReader interface {
	Count(ctx context.Context, contractorID string, day quota.Day) (int, error)
}

// Policy holds the tunable knobs of eligibility and ranking.
type Policy struct {
	Mode RankMode
	// RequireLocation excludes contractors when either side has no usable
	// location instead of skipping the radius check.
	RequireLocation bool
	// MaxCandidates trims the ranked list; zero keeps everyone.
	MaxCandidates int
}

// Candidate is an eligible contractor together with the facts ranking needs.
type Candidate struct {
	Contractor domain.Contractor
	// DistanceKm is +Inf when unknown.
	DistanceKm float64
	// Accepted is the contractor's quota count for the day.
	Accepted int
}

// Eligible returns the contractors allowed to receive an offer for order.
// The result is unordered. An empty result is not an error.
func (p Policy) Eligible(
	ctx context.Context,
	order *domain.Order,
	contractors []domain.Contractor,
	quotas QuotaReader,
	day quota.Day,
) ([]Candidate, error) {
	out := make([]Candidate, 0, len(contractors))
	for _, c := range contractors {
		if c.Status != domain.ContractorActive {
			continue
		}
		if !c.Specialization.Matches(order.Specialization) {
			continue
		}

		dist, ok := p.withinRadius(order, &c)
		if !ok {
			continue
		}

		n, err := quotas.Count(ctx, c.ID, day)
		if err != nil {
			return nil, fmt.Errorf("quota count for contractor %s: %w", c.ID, err)
		}
		if n >= c.Cap() {
			continue
		}

		out = append(out, Candidate{Contractor: c, DistanceKm: dist, Accepted: n})
	}
	return out, nil
}

func (p Policy) withinRadius(order *domain.Order, c *domain.Contractor) (float64, bool) {
	if !geo.Valid(order.Location) || !geo.Valid(c.Location) {
		return math.Inf(1), !p.RequireLocation
	}
	d := geo.Distance(order.Location, c.Location)
	return d, d <= c.WorkRadiusKm
}

// Rank orders candidates by preference, best first. The input slice is not
// modified. Equal scores fall back to contractor id so results are reproducible.
func (p Policy) Rank(candidates []Candidate) []Candidate {
	out := slices.Clone(candidates)
	score := p.scoreFunc()

	slices.SortStableFunc(out, func(a, b Candidate) int {
		sa, sb := score(a), score(b)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		if a.Contractor.Rating != b.Contractor.Rating {
			if a.Contractor.Rating > b.Contractor.Rating {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Contractor.ID, b.Contractor.ID)
	})

	if p.MaxCandidates > 0 && len(out) > p.MaxCandidates {
		out = out[:p.MaxCandidates]
	}
	return out
}

func (p Policy) scoreFunc() func(Candidate) float64 {
	if p.Mode == RankWeighted {
		return func(c Candidate) float64 {
			if math.IsInf(c.DistanceKm, 0) || math.IsNaN(c.DistanceKm) {
				return c.Contractor.Rating
			}
			return c.Contractor.Rating / (c.DistanceKm + 1)
		}
	}
	return func(c Candidate) float64 { return c.Contractor.Rating }
}
