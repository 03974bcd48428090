package catalog

import (
	"context"
	"errors"
	"time"

	"lashstudio/internal/config"
	"lashstudio/internal/domain"
	"lashstudio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("service not found")
)

// AppointmentResync keeps denormalized appointment spans in step with
// catalog duration edits.
type AppointmentResync interface {
	ResyncBufferedEnds(ctx context.Context, serviceID string, span time.Duration) error
}

type Service struct {
	services *repository.ServiceRepository
	appts    AppointmentResync
	cfg      *config.Config
}

func NewService(services *repository.ServiceRepository, appts AppointmentResync, cfg *config.Config) *Service {
	return &Service{services: services, appts: appts, cfg: cfg}
}

func (s *Service) List(ctx context.Context) ([]domain.ServiceDefinition, error) {
	return s.services.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.ServiceDefinition, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) Create(ctx context.Context, req UpsertServiceRequest) (*domain.ServiceDefinition, error) {
	if req.DurationMinutes <= 0 || req.Price < 0 {
		return nil, ErrValidation
	}

	svc := &domain.ServiceDefinition{
		ID:              uuid.NewString(),
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Description:     req.Description,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Update edits a catalog entry in place. A duration change retroactively
// changes the occupied span of every appointment referencing this service,
// so the stored buffered ends are recomputed to keep the write-time overlap
// guard in agreement with read-time durations.
func (s *Service) Update(ctx context.Context, id string, req UpsertServiceRequest) (*domain.ServiceDefinition, error) {
	if req.DurationMinutes <= 0 || req.Price < 0 {
		return nil, ErrValidation
	}

	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldDuration := svc.DurationMinutes

	svc.Name = req.Name
	svc.DurationMinutes = req.DurationMinutes
	svc.Price = req.Price
	svc.Description = req.Description

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}

	if oldDuration != svc.DurationMinutes {
		span := time.Duration(svc.DurationMinutes)*time.Minute + s.cfg.Buffer()
		if err := s.appts.ResyncBufferedEnds(ctx, svc.ID, span); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.services.Delete(ctx, id)
}
