package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, code, customer_id, inventory_unit_id, duration_minutes, price_cents, status, created_at, activated_at, expires_at, updated_at`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	query := `INSERT INTO rentals (id, code, customer_id, inventory_unit_id, duration_minutes, price_cents, status, created_at, expires_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.Code, rt.CustomerID, rt.InventoryUnitID, rt.DurationMinutes, rt.PriceCents, rt.Status, rt.CreatedAt, rt.ExpiresAt, rt.UpdatedAt)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) GetByCode(ctx context.Context, code string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE code = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, code))
}

func (r *rentalRepository) UpdateStatusIf(ctx context.Context, id string, from, to domain.RentalStatus, activatedAt *time.Time) (bool, error) {
	var res sql.Result
	var err error
	if activatedAt != nil {
		query := `UPDATE rentals SET status=$1, activated_at=$2, updated_at=$3 WHERE id=$4 AND status=$5`
		res, err = r.db.ExecContext(ctx, query, to, *activatedAt, time.Now(), id, from)
	} else {
		query := `UPDATE rentals SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4`
		res, err = r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	}
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *rentalRepository) List(ctx context.Context, status string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *rentalRepository) ListByCustomerAndStatuses(ctx context.Context, customerID string, statuses []domain.RentalStatus) ([]domain.Rental, error) {
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE customer_id = $1 AND status = ANY($2) ORDER BY created_at DESC`, rentalColumns)
	rows, err := r.db.QueryContext(ctx, query, customerID, pq.Array(ss))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *rentalRepository) ListExpiredPending(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND expires_at < $2 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusPending, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *rentalRepository) CodeInUse(ctx context.Context, code string) (bool, error) {
	query := `SELECT count(*) FROM rentals WHERE code = $1 AND status IN ($2, $3)`
	var count int
	err := r.db.QueryRowContext(ctx, query, code, domain.RentalStatusPending, domain.RentalStatusActive).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *rentalRepository) scanOne(row *sql.Row) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var activatedAt sql.NullTime
	err := row.Scan(&rt.ID, &rt.Code, &rt.CustomerID, &rt.InventoryUnitID, &rt.DurationMinutes, &rt.PriceCents, &rt.Status, &rt.CreatedAt, &activatedAt, &rt.ExpiresAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if activatedAt.Valid {
		rt.ActivatedAt = &activatedAt.Time
	}
	return rt, nil
}

func (r *rentalRepository) scanAll(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var activatedAt sql.NullTime
		if err := rows.Scan(&rt.ID, &rt.Code, &rt.CustomerID, &rt.InventoryUnitID, &rt.DurationMinutes, &rt.PriceCents, &rt.Status, &rt.CreatedAt, &activatedAt, &rt.ExpiresAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		if activatedAt.Valid {
			rt.ActivatedAt = &activatedAt.Time
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
