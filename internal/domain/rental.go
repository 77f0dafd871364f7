package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending       RentalStatus = "PENDING"
	RentalStatusActive        RentalStatus = "ACTIVE"
	RentalStatusCompleted     RentalStatus = "COMPLETED"
	RentalStatusCompletedLate RentalStatus = "COMPLETED_LATE"
	RentalStatusCancelled     RentalStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed from s.
func (s RentalStatus) Terminal() bool {
	switch s {
	case RentalStatusCompleted, RentalStatusCompletedLate, RentalStatusCancelled:
		return true
	}
	return false
}

type Rental struct {
	ID         string `json:"id"`
	// Code is the short pickup/return token handed to the customer at
	// reservation time. It is the only credential needed at the counter.
	Code            string       `json:"code"`
	CustomerID      string       `json:"customer_id"`
	InventoryUnitID string       `json:"inventory_unit_id"`
	DurationMinutes int32        `json:"duration_minutes"`
	PriceCents      int32        `json:"price_cents"`
	Status          RentalStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	// ActivatedAt is set when pickup is confirmed and is the basis for the
	// return deadline. Nil while the rental is still pending.
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	// ExpiresAt is the pickup deadline. Persisted so the recovery sweep can
	// cancel pending rentals even after a process restart.
	ExpiresAt time.Time `json:"expires_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
