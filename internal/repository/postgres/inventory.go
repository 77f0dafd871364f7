package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, u *domain.InventoryUnit) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Status == "" {
		u.Status = domain.UnitStatusAvailable
	}
	u.CreatedAt = time.Now()
	query := `INSERT INTO inventory_units (id, product_id, color, size, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.ProductID, u.Color, u.Size, u.Status, u.CreatedAt)
	return err
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryUnit, error) {
	u := &domain.InventoryUnit{}
	query := `SELECT id, product_id, color, size, status, created_at FROM inventory_units WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.ProductID, &u.Color, &u.Size, &u.Status, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Claim and Release are the only writers of unit status. Both are guarded by
// the current status so concurrent transitions cannot double-claim or
// double-release a unit.

func (r *inventoryRepository) Claim(ctx context.Context, id string) (bool, error) {
	return r.transition(ctx, id, domain.UnitStatusAvailable, domain.UnitStatusReserved)
}

func (r *inventoryRepository) Release(ctx context.Context, id string) (bool, error) {
	return r.transition(ctx, id, domain.UnitStatusReserved, domain.UnitStatusAvailable)
}

func (r *inventoryRepository) transition(ctx context.Context, id string, from, to domain.UnitStatus) (bool, error) {
	query := `UPDATE inventory_units SET status=$1 WHERE id=$2 AND status=$3`
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *inventoryRepository) ListWithProduct(ctx context.Context) ([]domain.InventoryListing, error) {
	query := `SELECT u.id, p.brand, p.model, u.status, p.cover_url, u.color, u.size
	          FROM inventory_units u JOIN products p ON p.id = u.product_id
	          ORDER BY p.brand, p.model`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.InventoryListing
	for rows.Next() {
		var l domain.InventoryListing
		if err := rows.Scan(&l.ID, &l.Brand, &l.Model, &l.Status, &l.CoverURL, &l.Color, &l.Size); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *inventoryRepository) CountAvailableByProduct(ctx context.Context, productID string) (int32, error) {
	query := `SELECT count(*) FROM inventory_units WHERE product_id = $1 AND status = $2`
	var count int32
	err := r.db.QueryRowContext(ctx, query, productID, domain.UnitStatusAvailable).Scan(&count)
	return count, err
}
