package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, email, cpf, phone, address, password_hash, COALESCE(avatar_url, ''), created_at`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	query := `INSERT INTO customers (id, name, email, cpf, phone, address, password_hash, avatar_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Email, c.CPF, c.Phone, c.Address, c.PasswordHash, c.AvatarURL, c.CreatedAt)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *customerRepository) GetByEmailOrCPF(ctx context.Context, email, cpf string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1 OR cpf = $2 LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email, cpf))
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CPF, &c.Phone, &c.Address, &c.PasswordHash, &c.AvatarURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, cpf=$3, phone=$4, address=$5, password_hash=$6, avatar_url=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.CPF, c.Phone, c.Address, c.PasswordHash, c.AvatarURL, c.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *customerRepository) scanOne(row *sql.Row) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CPF, &c.Phone, &c.Address, &c.PasswordHash, &c.AvatarURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
