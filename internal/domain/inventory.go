package domain

import "time"

type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "AVAILABLE"
	UnitStatusReserved  UnitStatus = "RESERVED"
)

// InventoryUnit is one physical rentable instance of a product, with a fixed
// color/size assignment. Its status must move in lock-step with the rental
// that references it: at most one non-terminal rental per unit.
type InventoryUnit struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	Color     string     `json:"color"`
	Size      string     `json:"size"`
	Status    UnitStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// InventoryListing is an inventory unit joined with its product definition,
// as shown on the inventory screen.
type InventoryListing struct {
	ID       string     `json:"id"`
	Brand    string     `json:"brand"`
	Model    string     `json:"model"`
	Status   UnitStatus `json:"status"`
	CoverURL string     `json:"cover_url"`
	Color    string     `json:"color"`
	Size     string     `json:"size"`
}
