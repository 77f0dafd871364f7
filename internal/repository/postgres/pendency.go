package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type pendencyRepository struct {
	db *sql.DB
}

func NewPendencyRepository(db *sql.DB) repository.PendencyRepository {
	return &pendencyRepository{db: db}
}

func (r *pendencyRepository) Create(ctx context.Context, p *domain.Pendency) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	query := `INSERT INTO pendencies (id, customer_id, rental_id, delay_minutes, value_cents, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.CustomerID, p.RentalID, p.DelayMinutes, p.ValueCents, p.CreatedAt)
	return err
}

func (r *pendencyRepository) GetByID(ctx context.Context, id string) (*domain.Pendency, error) {
	p := &domain.Pendency{}
	var resolvedAt sql.NullTime
	query := `SELECT id, customer_id, rental_id, delay_minutes, value_cents, resolved_at, created_at FROM pendencies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.CustomerID, &p.RentalID, &p.DelayMinutes, &p.ValueCents, &resolvedAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if resolvedAt.Valid {
		p.ResolvedAt = &resolvedAt.Time
	}
	return p, nil
}

func (r *pendencyRepository) HasUnresolved(ctx context.Context, customerID string) (bool, error) {
	query := `SELECT count(*) FROM pendencies WHERE customer_id = $1 AND resolved_at IS NULL`
	var count int
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pendencyRepository) Resolve(ctx context.Context, id string, resolvedAt time.Time) (bool, error) {
	query := `UPDATE pendencies SET resolved_at = $1 WHERE id = $2 AND resolved_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, resolvedAt, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *pendencyRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Pendency, error) {
	query := `SELECT id, customer_id, rental_id, delay_minutes, value_cents, resolved_at, created_at
	          FROM pendencies WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pendencies []domain.Pendency
	for rows.Next() {
		var p domain.Pendency
		var resolvedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.RentalID, &p.DelayMinutes, &p.ValueCents, &resolvedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		if resolvedAt.Valid {
			p.ResolvedAt = &resolvedAt.Time
		}
		pendencies = append(pendencies, p)
	}
	return pendencies, rows.Err()
}
