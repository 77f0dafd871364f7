package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	query := `INSERT INTO products (id, brand, model, description, hourly_rate_cents, cover_url, category, supplier_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Brand, p.Model, p.Description, p.HourlyRateCents, p.CoverURL, p.Category, p.SupplierID, p.CreatedAt)
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, brand, model, COALESCE(description, ''), hourly_rate_cents, cover_url, category, supplier_id, created_at FROM products WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *productRepository) GetByBrandModel(ctx context.Context, brand, model string) (*domain.Product, error) {
	query := `SELECT id, brand, model, COALESCE(description, ''), hourly_rate_cents, cover_url, category, supplier_id, created_at FROM products WHERE brand = $1 AND model = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, brand, model))
}

func (r *productRepository) ListAvailable(ctx context.Context) ([]domain.ProductSummary, error) {
	query := `SELECT p.id, p.category, p.brand, p.model, COALESCE(p.description, ''), p.hourly_rate_cents, p.cover_url, count(u.id)
	          FROM products p
	          JOIN inventory_units u ON u.product_id = p.id AND u.status = $1
	          GROUP BY p.id, p.category, p.brand, p.model, p.description, p.hourly_rate_cents, p.cover_url
	          ORDER BY p.brand, p.model`
	rows, err := r.db.QueryContext(ctx, query, domain.UnitStatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ProductSummary
	for rows.Next() {
		var s domain.ProductSummary
		var description string
		if err := rows.Scan(&s.ID, &s.Category, &s.Brand, &s.Model, &description, &s.HourlyRateCents, &s.CoverURL, &s.AvailableQuantity); err != nil {
			return nil, err
		}
		s.Excerpt = excerpt(description)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET brand=$1, model=$2, description=$3, hourly_rate_cents=$4, cover_url=$5, category=$6, supplier_id=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, p.Brand, p.Model, p.Description, p.HourlyRateCents, p.CoverURL, p.Category, p.SupplierID, p.ID)
	return err
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *productRepository) scanOne(row *sql.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.Brand, &p.Model, &p.Description, &p.HourlyRateCents, &p.CoverURL, &p.Category, &p.SupplierID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func excerpt(description string) string {
	if len(description) <= 75 {
		return description
	}
	return description[:75] + "..."
}
