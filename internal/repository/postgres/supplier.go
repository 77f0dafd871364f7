package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type supplierRepository struct {
	db *sql.DB
}

func NewSupplierRepository(db *sql.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now()
	query := `INSERT INTO suppliers (id, name, email, phone, cnpj, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Email, s.Phone, s.CNPJ, s.CreatedAt)
	return err
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	query := `SELECT id, name, email, phone, cnpj, created_at FROM suppliers WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *supplierRepository) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	query := `SELECT id, name, email, phone, cnpj, created_at FROM suppliers WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *supplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT id, name, email, phone, cnpj, created_at FROM suppliers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.CNPJ, &s.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	query := `UPDATE suppliers SET name=$1, email=$2, phone=$3, cnpj=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Email, s.Phone, s.CNPJ, s.ID)
	return err
}

func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM suppliers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *supplierRepository) scanOne(row *sql.Row) (*domain.Supplier, error) {
	s := &domain.Supplier{}
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.CNPJ, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
