package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"equiprent-backend/internal/config"
	"equiprent-backend/internal/domain"
)

type rentalMocks struct {
	rentals    *MockRentalRepo
	inventory  *MockInventoryRepo
	products   *MockProductRepo
	pendencies *MockPendencyRepo
	customers  *MockCustomerRepo
	emailSvc   *MockEmailService
	expiry     *MockExpiry
}

func newTestRentalService() (*rentalService, *rentalMocks) {
	m := &rentalMocks{
		rentals:    new(MockRentalRepo),
		inventory:  new(MockInventoryRepo),
		products:   new(MockProductRepo),
		pendencies: new(MockPendencyRepo),
		customers:  new(MockCustomerRepo),
		emailSvc:   new(MockEmailService),
		expiry:     new(MockExpiry),
	}
	cfg := config.RentalConfig{
		PickupWindowMinutes:   60,
		ReturnGraceMinutes:    10,
		LateFeeCentsPerMinute: 25,
	}
	svc := NewRentalService(m.rentals, m.inventory, m.products, m.pendencies, m.customers, m.emailSvc, m.expiry, cfg).(*rentalService)
	return svc, m
}

func TestRentalService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		svc, m := newTestRentalService()
		svc.now = func() time.Time { return now }
		svc.generateCode = func() (string, error) { return "A1B2C3", nil }

		m.pendencies.On("HasUnresolved", ctx, "cust-1").Return(false, nil)
		m.inventory.On("Claim", ctx, "unit-1").Return(true, nil)
		m.inventory.On("GetByID", ctx, "unit-1").Return(&domain.InventoryUnit{ID: "unit-1", ProductID: "prod-1"}, nil)
		m.products.On("GetByID", ctx, "prod-1").Return(&domain.Product{ID: "prod-1", HourlyRateCents: 100}, nil)
		m.rentals.On("CodeInUse", ctx, "A1B2C3").Return(false, nil)
		m.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Rental).ID = "rental-1"
		}).Return(nil)
		m.expiry.On("Schedule", "rental-1", now.Add(60*time.Minute)).Return()

		code, err := svc.Create(ctx, "cust-1", "unit-1", 90)
		assert.NoError(t, err)
		assert.Equal(t, "A1B2C3", code)

		created := m.rentals.Calls[1].Arguments.Get(1).(*domain.Rental)
		assert.Equal(t, domain.RentalStatusPending, created.Status)
		// 100 cents/hour for 90 minutes
		assert.Equal(t, int32(150), created.PriceCents)
		assert.Equal(t, now.Add(60*time.Minute), created.ExpiresAt)
		m.expiry.AssertCalled(t, "Schedule", "rental-1", now.Add(60*time.Minute))
	})

	t.Run("Invalid duration", func(t *testing.T) {
		svc, _ := newTestRentalService()
		_, err := svc.Create(ctx, "cust-1", "unit-1", 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("Blocked by unresolved pendency", func(t *testing.T) {
		svc, m := newTestRentalService()
		m.pendencies.On("HasUnresolved", ctx, "cust-1").Return(true, nil)

		_, err := svc.Create(ctx, "cust-1", "unit-1", 60)
		assert.ErrorIs(t, err, ErrEligibilityBlocked)
		m.inventory.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
	})

	t.Run("Unit already reserved", func(t *testing.T) {
		svc, m := newTestRentalService()
		m.pendencies.On("HasUnresolved", ctx, "cust-1").Return(false, nil)
		m.inventory.On("Claim", ctx, "unit-1").Return(false, nil)

		_, err := svc.Create(ctx, "cust-1", "unit-1", 60)
		assert.ErrorIs(t, err, ErrUnitUnavailable)
	})

	t.Run("Code collision retried", func(t *testing.T) {
		svc, m := newTestRentalService()
		svc.now = func() time.Time { return now }
		codes := []string{"TAKEN1", "FRESH2"}
		svc.generateCode = func() (string, error) {
			code := codes[0]
			codes = codes[1:]
			return code, nil
		}

		m.pendencies.On("HasUnresolved", ctx, "cust-1").Return(false, nil)
		m.inventory.On("Claim", ctx, "unit-1").Return(true, nil)
		m.inventory.On("GetByID", ctx, "unit-1").Return(&domain.InventoryUnit{ID: "unit-1", ProductID: "prod-1"}, nil)
		m.products.On("GetByID", ctx, "prod-1").Return(&domain.Product{ID: "prod-1", HourlyRateCents: 600}, nil)
		m.rentals.On("CodeInUse", ctx, "TAKEN1").Return(true, nil)
		m.rentals.On("CodeInUse", ctx, "FRESH2").Return(false, nil)
		m.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		m.expiry.On("Schedule", mock.Anything, mock.Anything).Return()

		code, err := svc.Create(ctx, "cust-1", "unit-1", 60)
		assert.NoError(t, err)
		assert.Equal(t, "FRESH2", code)
	})

	t.Run("Unit released when persisting fails", func(t *testing.T) {
		svc, m := newTestRentalService()
		svc.now = func() time.Time { return now }
		svc.generateCode = func() (string, error) { return "A1B2C3", nil }

		m.pendencies.On("HasUnresolved", ctx, "cust-1").Return(false, nil)
		m.inventory.On("Claim", ctx, "unit-1").Return(true, nil)
		m.inventory.On("GetByID", ctx, "unit-1").Return(&domain.InventoryUnit{ID: "unit-1", ProductID: "prod-1"}, nil)
		m.products.On("GetByID", ctx, "prod-1").Return(&domain.Product{ID: "prod-1", HourlyRateCents: 100}, nil)
		m.rentals.On("CodeInUse", ctx, "A1B2C3").Return(false, nil)
		m.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(errors.New("insert failed"))
		m.inventory.On("Release", ctx, "unit-1").Return(true, nil)

		_, err := svc.Create(ctx, "cust-1", "unit-1", 60)
		assert.Error(t, err)
		m.inventory.AssertCalled(t, "Release", ctx, "unit-1")
		m.expiry.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
	})
}

func TestRentalService_ConfirmPickup(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		svc, m := newTestRentalService()
		svc.now = func() time.Time { return now }

		pending := &domain.Rental{ID: "rental-1", Code: "A1B2C3", Status: domain.RentalStatusPending}
		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(pending, nil)
		m.rentals.On("UpdateStatusIf", ctx, "rental-1", domain.RentalStatusPending, domain.RentalStatusActive, &now).Return(true, nil)

		rt, err := svc.ConfirmPickup(ctx, "A1B2C3")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusActive, rt.Status)
		assert.NotNil(t, rt.ActivatedAt)
		assert.Equal(t, now, *rt.ActivatedAt)
	})

	t.Run("Unknown code", func(t *testing.T) {
		svc, m := newTestRentalService()
		m.rentals.On("GetByCode", ctx, "NOPE00").Return(nil, sql.ErrNoRows)

		_, err := svc.ConfirmPickup(ctx, "NOPE00")
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("Cancelled rental reports expired window", func(t *testing.T) {
		svc, m := newTestRentalService()
		cancelled := &domain.Rental{ID: "rental-1", Code: "A1B2C3", Status: domain.RentalStatusCancelled}
		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(cancelled, nil)

		_, err := svc.ConfirmPickup(ctx, "A1B2C3")
		assert.ErrorIs(t, err, ErrWindowExpired)
	})

	t.Run("Already active", func(t *testing.T) {
		svc, m := newTestRentalService()
		active := &domain.Rental{ID: "rental-1", Code: "A1B2C3", Status: domain.RentalStatusActive}
		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(active, nil)

		_, err := svc.ConfirmPickup(ctx, "A1B2C3")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Expiry wins the race", func(t *testing.T) {
		svc, m := newTestRentalService()
		svc.now = func() time.Time { return now }

		pending := &domain.Rental{ID: "rental-1", Code: "A1B2C3", Status: domain.RentalStatusPending}
		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(pending, nil)
		m.rentals.On("UpdateStatusIf", ctx, "rental-1", domain.RentalStatusPending, domain.RentalStatusActive, &now).Return(false, nil)
		m.rentals.On("GetByID", ctx, "rental-1").Return(&domain.Rental{ID: "rental-1", Status: domain.RentalStatusCancelled}, nil)

		_, err := svc.ConfirmPickup(ctx, "A1B2C3")
		assert.ErrorIs(t, err, ErrWindowExpired)
	})
}

func TestRentalService_ConfirmReturn(t *testing.T) {
	ctx := context.Background()
	activatedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	activeRental := func() *domain.Rental {
		at := activatedAt
		return &domain.Rental{
			ID:              "rental-1",
			Code:            "A1B2C3",
			CustomerID:      "cust-1",
			InventoryUnitID: "unit-1",
			DurationMinutes: 60,
			Status:          domain.RentalStatusActive,
			ActivatedAt:     &at,
		}
	}

	t.Run("On time at the grace boundary", func(t *testing.T) {
		svc, m := newTestRentalService()
		// 65 minutes elapsed on a 60-minute rental with 10 minutes grace.
		svc.now = func() time.Time { return activatedAt.Add(65 * time.Minute) }

		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(activeRental(), nil)
		m.rentals.On("UpdateStatusIf", ctx, "rental-1", domain.RentalStatusActive, domain.RentalStatusCompleted, (*time.Time)(nil)).Return(true, nil)
		m.inventory.On("Release", ctx, "unit-1").Return(true, nil)

		res, err := svc.ConfirmReturn(ctx, "cust-1", "A1B2C3")
		assert.NoError(t, err)
		assert.False(t, res.HasPendency)
		assert.Equal(t, domain.RentalStatusCompleted, res.Rental.Status)
		assert.Nil(t, res.Pendency)
		m.pendencies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Exactly duration plus grace is still on time", func(t *testing.T) {
		svc, m := newTestRentalService()
		svc.now = func() time.Time { return activatedAt.Add(70 * time.Minute) }

		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(activeRental(), nil)
		m.rentals.On("UpdateStatusIf", ctx, "rental-1", domain.RentalStatusActive, domain.RentalStatusCompleted, (*time.Time)(nil)).Return(true, nil)
		m.inventory.On("Release", ctx, "unit-1").Return(true, nil)

		res, err := svc.ConfirmReturn(ctx, "cust-1", "A1B2C3")
		assert.NoError(t, err)
		assert.False(t, res.HasPendency)
	})

	t.Run("Late return creates pendency and notifies", func(t *testing.T) {
		svc, m := newTestRentalService()
		// 85 minutes elapsed on a 60-minute rental: 25 minutes past due.
		svc.now = func() time.Time { return activatedAt.Add(85 * time.Minute) }

		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(activeRental(), nil)
		m.rentals.On("UpdateStatusIf", ctx, "rental-1", domain.RentalStatusActive, domain.RentalStatusCompletedLate, (*time.Time)(nil)).Return(true, nil)
		m.inventory.On("Release", ctx, "unit-1").Return(true, nil)
		m.pendencies.On("Create", ctx, mock.AnythingOfType("*domain.Pendency")).Return(nil)
		m.customers.On("GetByID", ctx, "cust-1").Return(&domain.Customer{ID: "cust-1", Name: "Ana", Email: "ana@test.com"}, nil)
		m.emailSvc.On("SendPendencyNotice", ctx, "ana@test.com", "Ana", "A1B2C3", int32(625), int32(25)).Return(nil)

		res, err := svc.ConfirmReturn(ctx, "cust-1", "A1B2C3")
		assert.NoError(t, err)
		assert.True(t, res.HasPendency)
		assert.Equal(t, domain.RentalStatusCompletedLate, res.Rental.Status)
		assert.Equal(t, int32(25), res.Pendency.DelayMinutes)
		assert.Equal(t, int32(625), res.Pendency.ValueCents)
		m.emailSvc.AssertCalled(t, "SendPendencyNotice", ctx, "ana@test.com", "Ana", "A1B2C3", int32(625), int32(25))
	})

	t.Run("Not active", func(t *testing.T) {
		svc, m := newTestRentalService()
		pending := &domain.Rental{ID: "rental-1", Code: "A1B2C3", Status: domain.RentalStatusPending}
		m.rentals.On("GetByCode", ctx, "A1B2C3").Return(pending, nil)

		_, err := svc.ConfirmReturn(ctx, "cust-1", "A1B2C3")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRentalService_CustomerRentals(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestRentalService()

	active := []domain.Rental{{ID: "r1", Status: domain.RentalStatusActive}}
	completed := []domain.Rental{
		{ID: "r2", Status: domain.RentalStatusCompleted},
		{ID: "r3", Status: domain.RentalStatusCompletedLate},
	}
	m.rentals.On("ListByCustomerAndStatuses", ctx, "cust-1", []domain.RentalStatus{domain.RentalStatusActive}).Return(active, nil)
	m.rentals.On("ListByCustomerAndStatuses", ctx, "cust-1", []domain.RentalStatus{domain.RentalStatusCompleted, domain.RentalStatusCompletedLate}).Return(completed, nil)

	gotActive, gotCompleted, err := svc.CustomerRentals(ctx, "cust-1")
	assert.NoError(t, err)
	assert.Len(t, gotActive, 1)
	assert.Len(t, gotCompleted, 2)
}
