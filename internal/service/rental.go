package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"equiprent-backend/internal/config"
	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/rentalcode"
	"equiprent-backend/internal/repository"
)

// codeAttempts bounds the collision-retry loop during code generation.
const codeAttempts = 5

type rentalService struct {
	rentals    repository.RentalRepository
	inventory  repository.InventoryRepository
	products   repository.ProductRepository
	pendencies repository.PendencyRepository
	customers  repository.CustomerRepository
	emailSvc   EmailService
	expiry     RentalExpiryScheduler
	cfg        config.RentalConfig

	now          func() time.Time
	generateCode func() (string, error)
}

func NewRentalService(
	rentals repository.RentalRepository,
	inventory repository.InventoryRepository,
	products repository.ProductRepository,
	pendencies repository.PendencyRepository,
	customers repository.CustomerRepository,
	emailSvc EmailService,
	expiry RentalExpiryScheduler,
	cfg config.RentalConfig,
) RentalService {
	return &rentalService{
		rentals:      rentals,
		inventory:    inventory,
		products:     products,
		pendencies:   pendencies,
		customers:    customers,
		emailSvc:     emailSvc,
		expiry:       expiry,
		cfg:          cfg,
		now:          time.Now,
		generateCode: rentalcode.Generate,
	}
}

func (s *rentalService) Create(ctx context.Context, customerID, unitID string, durationMinutes int32) (string, error) {
	if durationMinutes <= 0 {
		return "", ErrInvalidDuration
	}

	blocked, err := s.pendencies.HasUnresolved(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("checking pendencies: %w", err)
	}
	if blocked {
		return "", ErrEligibilityBlocked
	}

	// Single conditional claim: of all concurrent requests for this unit,
	// exactly one sees AVAILABLE and flips it to RESERVED.
	claimed, err := s.inventory.Claim(ctx, unitID)
	if err != nil {
		return "", fmt.Errorf("claiming unit: %w", err)
	}
	if !claimed {
		return "", ErrUnitUnavailable
	}

	// The unit is ours from here on; put it back on any failure.
	unit, err := s.inventory.GetByID(ctx, unitID)
	if err != nil {
		s.unclaim(ctx, unitID)
		return "", fmt.Errorf("loading unit: %w", err)
	}
	product, err := s.products.GetByID(ctx, unit.ProductID)
	if err != nil {
		s.unclaim(ctx, unitID)
		return "", fmt.Errorf("loading product: %w", err)
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		s.unclaim(ctx, unitID)
		return "", err
	}

	now := s.now()
	rental := &domain.Rental{
		Code:            code,
		CustomerID:      customerID,
		InventoryUnitID: unitID,
		DurationMinutes: durationMinutes,
		PriceCents:      product.HourlyRateCents * durationMinutes / 60,
		Status:          domain.RentalStatusPending,
		ExpiresAt:       now.Add(time.Duration(s.cfg.PickupWindowMinutes) * time.Minute),
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		s.unclaim(ctx, unitID)
		return "", fmt.Errorf("creating rental: %w", err)
	}

	s.expiry.Schedule(rental.ID, rental.ExpiresAt)
	logger.InfoContext(ctx, "Rental reserved", "rental_id", rental.ID, "unit_id", unitID, "expires_at", rental.ExpiresAt)

	return code, nil
}

func (s *rentalService) ConfirmPickup(ctx context.Context, code string) (*domain.Rental, error) {
	rt, err := s.rentals.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("loading rental: %w", err)
	}
	if rt.Status == domain.RentalStatusCancelled {
		return nil, ErrWindowExpired
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, ErrInvalidTransition
	}

	// The usage window starts at pickup, not at reservation.
	now := s.now()
	ok, err := s.rentals.UpdateStatusIf(ctx, rt.ID, domain.RentalStatusPending, domain.RentalStatusActive, &now)
	if err != nil {
		return nil, fmt.Errorf("activating rental: %w", err)
	}
	if !ok {
		// Lost the race, almost certainly to the expiry timer.
		fresh, err := s.rentals.GetByID(ctx, rt.ID)
		if err == nil && fresh.Status == domain.RentalStatusCancelled {
			return nil, ErrWindowExpired
		}
		return nil, ErrInvalidTransition
	}

	rt.Status = domain.RentalStatusActive
	rt.ActivatedAt = &now
	rt.UpdatedAt = now
	return rt, nil
}

func (s *rentalService) ConfirmReturn(ctx context.Context, customerID, code string) (*ReturnResult, error) {
	rt, err := s.rentals.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("loading rental: %w", err)
	}
	if rt.Status != domain.RentalStatusActive || rt.ActivatedAt == nil {
		return nil, ErrInvalidTransition
	}

	elapsed := int32(s.now().Sub(*rt.ActivatedAt).Minutes())
	late := elapsed > rt.DurationMinutes+s.cfg.ReturnGraceMinutes

	target := domain.RentalStatusCompleted
	if late {
		target = domain.RentalStatusCompletedLate
	}
	ok, err := s.rentals.UpdateStatusIf(ctx, rt.ID, domain.RentalStatusActive, target, nil)
	if err != nil {
		return nil, fmt.Errorf("completing rental: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	// The unit goes back on the shelf whether or not the return was late.
	if _, err := s.inventory.Release(ctx, rt.InventoryUnitID); err != nil {
		return nil, fmt.Errorf("releasing unit: %w", err)
	}
	rt.Status = target

	if !late {
		return &ReturnResult{HasPendency: false, Rental: rt}, nil
	}

	delay := elapsed - rt.DurationMinutes
	pendency := &domain.Pendency{
		CustomerID:   customerID,
		RentalID:     rt.ID,
		DelayMinutes: delay,
		ValueCents:   delay * s.cfg.LateFeeCentsPerMinute,
	}
	if err := s.pendencies.Create(ctx, pendency); err != nil {
		return nil, fmt.Errorf("creating pendency: %w", err)
	}
	logger.InfoContext(ctx, "Late return", "rental_id", rt.ID, "delay_minutes", delay, "value_cents", pendency.ValueCents)

	if s.emailSvc != nil {
		if customer, err := s.customers.GetByID(ctx, customerID); err == nil {
			_ = s.emailSvc.SendPendencyNotice(ctx, customer.Email, customer.Name, rt.Code, pendency.ValueCents, delay)
		}
	}

	return &ReturnResult{HasPendency: true, Rental: rt, Pendency: pendency}, nil
}

func (s *rentalService) List(ctx context.Context, status string) ([]domain.Rental, error) {
	return s.rentals.List(ctx, status)
}

func (s *rentalService) CustomerRentals(ctx context.Context, customerID string) ([]domain.Rental, []domain.Rental, error) {
	active, err := s.rentals.ListByCustomerAndStatuses(ctx, customerID, []domain.RentalStatus{domain.RentalStatusActive})
	if err != nil {
		return nil, nil, err
	}
	completed, err := s.rentals.ListByCustomerAndStatuses(ctx, customerID, []domain.RentalStatus{
		domain.RentalStatusCompleted,
		domain.RentalStatusCompletedLate,
	})
	if err != nil {
		return nil, nil, err
	}
	return active, completed, nil
}

func (s *rentalService) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := s.generateCode()
		if err != nil {
			return "", fmt.Errorf("generating code: %w", err)
		}
		inUse, err := s.rentals.CodeInUse(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking code: %w", err)
		}
		if !inUse {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique rental code after %d attempts", codeAttempts)
}

func (s *rentalService) unclaim(ctx context.Context, unitID string) {
	if _, err := s.inventory.Release(ctx, unitID); err != nil {
		logger.ErrorContext(ctx, "Failed to release unit after aborted reservation", "unit_id", unitID, "error", err)
	}
}
