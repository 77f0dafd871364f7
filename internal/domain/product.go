package domain

import "time"

type Product struct {
	ID          string `json:"id"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Description string `json:"description"`
	// HourlyRateCents is the rental price per hour, in cents. Rental price is
	// always hourly rate times booked duration.
	HourlyRateCents int32     `json:"hourly_rate_cents"`
	CoverURL        string    `json:"cover_url"`
	Category        string    `json:"category"`
	SupplierID      string    `json:"supplier_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProductSummary is the catalog card: a product with at least one available
// unit, plus how many units are free right now.
type ProductSummary struct {
	ID                string `json:"id"`
	Category          string `json:"category"`
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	Excerpt           string `json:"excerpt"`
	HourlyRateCents   int32  `json:"hourly_rate_cents"`
	CoverURL          string `json:"cover_url"`
	AvailableQuantity int32  `json:"available_quantity"`
}
