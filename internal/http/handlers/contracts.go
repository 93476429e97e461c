package handlers

import (
	"context"

	"drillflow-dispatch/internal/domain"
)

type orderUsecase interface {
	Distribute(ctx context.Context, orderID string) (domain.RunResult, error)
	HandleResponse(ctx context.Context, resp domain.Response) (domain.ResponseOutcome, error)
	Offers(ctx context.Context, orderID string) ([]domain.Offer, error)
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)
	Fail(ctx context.Context, orderID, reason string) (*domain.Order, error)
	Start(ctx context.Context, orderID, contractorID string) (*domain.Order, error)
	Complete(ctx context.Context, orderID, contractorID string, rating *float64) (*domain.Order, error)
}

type contractorUsecase interface {
	Get(ctx context.Context, id string) (*domain.Contractor, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Contractor, error)
	Create(ctx context.Context, c *domain.Contractor) (string, error)
	UpdatePartial(ctx context.Context, u domain.PartialContractorUpdate) (bool, error)
	Block(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
}
