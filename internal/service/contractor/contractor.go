package contractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
)

// MaxWorkRadiusKm bounds the radius a contractor may register with.
const MaxWorkRadiusKm = 500

// Service coordinates contractor registry logic and orchestrates repository calls.
type Service struct {
	repo             contractorRepository
	operationTimeout time.Duration
	logger           logx.Logger
	newID            func() string
}

// NewService creates and configures a contractor Service.
func NewService(r contractorRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		newID:            func() string { return uuid.NewString() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validLocation(l *domain.Location) bool {
	if l == nil {
		return true
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

func validRadius(r float64) bool {
	return r > 0 && r <= MaxWorkRadiusKm
}

// validateCreate validates a contractor for creation and fills defaults.
func validateCreate(c *domain.Contractor) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	c.Name = strings.TrimSpace(c.Name)
	c.UserID = strings.TrimSpace(c.UserID)
	if c.Name == "" || c.UserID == "" {
		return apperr.ErrInvalid
	}
	if !c.Specialization.Valid() {
		return fmt.Errorf("specialization %q: %w", c.Specialization, apperr.ErrInvalid)
	}
	if !validRadius(c.WorkRadiusKm) {
		return fmt.Errorf("work radius %v: %w", c.WorkRadiusKm, apperr.ErrInvalid)
	}
	if !validLocation(c.Location) {
		return apperr.ErrInvalid
	}
	if c.Status == "" {
		c.Status = domain.ContractorPending
	}
	if !c.Status.Valid() {
		return apperr.ErrInvalid
	}
	if c.DailyCap < 0 {
		return apperr.ErrInvalid
	}
	if c.DailyCap == 0 {
		c.DailyCap = domain.DefaultDailyCap
	}
	// рейтинг и счётчик выполненных заказов ведёт движок
	c.Rating = 0
	c.OrdersCompleted = 0
	c.RatingsCount = 0
	return nil
}

func validateUpdate(u *domain.PartialContractorUpdate) error {
	if strings.TrimSpace(u.ID) == "" {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Specialization == nil && u.WorkRadiusKm == nil &&
		u.Location == nil && u.Status == nil && u.DailyCap == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Specialization != nil && !u.Specialization.Valid() {
		return apperr.ErrInvalid
	}
	if u.WorkRadiusKm != nil && !validRadius(*u.WorkRadiusKm) {
		return apperr.ErrInvalid
	}
	if !validLocation(u.Location) {
		return apperr.ErrInvalid
	}
	if u.Status != nil && !u.Status.Valid() {
		return apperr.ErrInvalid
	}
	if u.DailyCap != nil && *u.DailyCap <= 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a contractor by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Contractor, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.GetContractor(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns contractors with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Contractor, error) {
	if (limit != nil && *limit < 0) || (offset != nil && *offset < 0) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create registers a new contractor and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Contractor) (string, error) {
	if err := validateCreate(c); err != nil {
		return "", err
	}
	c.ID = s.newID()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, c); err != nil {
		return "", err
	}
	s.logger.Info("contractor registered",
		logx.String("event", "contractor_created"),
		logx.String("contractor_id", c.ID),
		logx.String("specialization", string(c.Specialization)),
		logx.String("status", string(c.Status)),
	)
	return c.ID, nil
}

// UpdatePartial applies a partial update to a contractor. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialContractorUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	if u.Status != nil {
		s.logger.Info("contractor status changed",
			logx.String("event", "contractor_status"),
			logx.String("contractor_id", u.ID),
			logx.String("status", string(*u.Status)),
		)
	}
	return true, nil
}

// Block stops a contractor from receiving offers. Pending offers are not
// withdrawn; an accept from a blocked contractor is rejected by the engine.
func (s *Service) Block(ctx context.Context, id string) error {
	st := domain.ContractorBlocked
	_, err := s.UpdatePartial(ctx, domain.PartialContractorUpdate{ID: id, Status: &st})
	return err
}

// Activate makes a contractor eligible for distribution.
func (s *Service) Activate(ctx context.Context, id string) error {
	st := domain.ContractorActive
	_, err := s.UpdatePartial(ctx, domain.PartialContractorUpdate{ID: id, Status: &st})
	return err
}
