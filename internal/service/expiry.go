package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

// ExpiryScheduler enforces the pickup window. Each created rental gets a
// one-shot in-process timer; the persisted expires_at column plus Sweep makes
// the deadline survive restarts. An armed timer is never cancelled on pickup:
// it fires and finds the status guard failed, which is a no-op.
type ExpiryScheduler struct {
	rentals   repository.RentalRepository
	inventory repository.InventoryRepository
	customers repository.CustomerRepository
	emailSvc  EmailService

	now func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewExpiryScheduler(
	rentals repository.RentalRepository,
	inventory repository.InventoryRepository,
	customers repository.CustomerRepository,
	emailSvc EmailService,
) *ExpiryScheduler {
	return &ExpiryScheduler{
		rentals:   rentals,
		inventory: inventory,
		customers: customers,
		emailSvc:  emailSvc,
		now:       time.Now,
		timers:    make(map[string]*time.Timer),
	}
}

// Schedule arms the deadline check for one rental.
func (s *ExpiryScheduler) Schedule(rentalID string, dueAt time.Time) {
	delay := dueAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[rentalID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, rentalID)
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.CancelIfStillPending(ctx, rentalID); err != nil {
			logger.Error("Pickup expiry check failed", "rental_id", rentalID, "error", err)
		}
	})
}

// CancelIfStillPending cancels the rental and frees its unit if pickup was
// never confirmed. The status re-read and the guarded update make the check
// race-safe against ConfirmPickup and idempotent under double firing; it
// reports whether this call did the cancelling.
func (s *ExpiryScheduler) CancelIfStillPending(ctx context.Context, rentalID string) (bool, error) {
	rt, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("loading rental: %w", err)
	}
	if rt.Status != domain.RentalStatusPending {
		return false, nil
	}

	cancelled, err := s.rentals.UpdateStatusIf(ctx, rt.ID, domain.RentalStatusPending, domain.RentalStatusCancelled, nil)
	if err != nil {
		return false, fmt.Errorf("cancelling rental: %w", err)
	}
	if !cancelled {
		// Pickup confirmation won the race.
		return false, nil
	}

	if _, err := s.inventory.Release(ctx, rt.InventoryUnitID); err != nil {
		return true, fmt.Errorf("releasing unit %s: %w", rt.InventoryUnitID, err)
	}

	logger.InfoContext(ctx, "Cancelled rental, pickup window elapsed", "rental_id", rt.ID, "unit_id", rt.InventoryUnitID)
	s.notifyCancellation(ctx, rt)
	return true, nil
}

// Sweep cancels every pending rental already past its deadline. It runs at
// startup and on a cron interval, covering timers lost to a restart. Returns
// how many rentals were cancelled.
func (s *ExpiryScheduler) Sweep(ctx context.Context) (int, error) {
	expired, err := s.rentals.ListExpiredPending(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("listing expired rentals: %w", err)
	}

	count := 0
	for _, rt := range expired {
		cancelled, err := s.CancelIfStillPending(ctx, rt.ID)
		if err != nil {
			logger.ErrorContext(ctx, "Sweep failed to cancel rental", "rental_id", rt.ID, "error", err)
			continue
		}
		if cancelled {
			count++
		}
	}
	return count, nil
}

// Stop drops all armed timers. Pending deadlines are picked up again by the
// next Sweep.
func (s *ExpiryScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *ExpiryScheduler) notifyCancellation(ctx context.Context, rt *domain.Rental) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.customers.GetByID(ctx, rt.CustomerID)
	if err != nil {
		return
	}
	_ = s.emailSvc.SendCancellationNotice(ctx, customer.Email, customer.Name, rt.Code)
}
