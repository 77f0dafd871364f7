package service

import (
	"context"
	"fmt"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type pendencyService struct {
	pendencies repository.PendencyRepository
	now        func() time.Time
}

func NewPendencyService(pendencies repository.PendencyRepository) PendencyService {
	return &pendencyService{pendencies: pendencies, now: time.Now}
}

func (s *pendencyService) ListByCustomer(ctx context.Context, customerID string) ([]domain.Pendency, error) {
	return s.pendencies.ListByCustomer(ctx, customerID)
}

func (s *pendencyService) Resolve(ctx context.Context, id string) (*domain.Pendency, error) {
	resolved, err := s.pendencies.Resolve(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("resolving pendency: %w", err)
	}
	if !resolved {
		return nil, ErrPendencyResolved
	}
	return s.pendencies.GetByID(ctx, id)
}
