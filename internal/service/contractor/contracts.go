package contractor

import (
	"context"

	"drillflow-dispatch/internal/domain"
)

// contractorRepository defines storage operations required by the business layer.
type contractorRepository interface {
	GetContractor(ctx context.Context, id string) (*domain.Contractor, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Contractor, error)
	Create(ctx context.Context, c *domain.Contractor) error
	UpdatePartial(ctx context.Context, u domain.PartialContractorUpdate) (bool, error)
}
