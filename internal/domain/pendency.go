package domain

import "time"

// Pendency is a billable late-return debt. A customer with any unresolved
// pendency cannot open a new rental until it is settled externally.
type Pendency struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	RentalID     string `json:"rental_id"`
	DelayMinutes int32  `json:"delay_minutes"`
	ValueCents   int32  `json:"value_cents"`
	// ResolvedAt is set by the billing collaborator when the debt is settled.
	// Nil means outstanding.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
