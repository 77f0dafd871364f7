package postgres

import (
	"database/sql"

	"equiprent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
	repository.InventoryRepository
	repository.ProductRepository
	repository.PendencyRepository
	repository.CustomerRepository
	repository.SupplierRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		RentalRepository:    NewRentalRepository(db),
		InventoryRepository: NewInventoryRepository(db),
		ProductRepository:   NewProductRepository(db),
		PendencyRepository:  NewPendencyRepository(db),
		CustomerRepository:  NewCustomerRepository(db),
		SupplierRepository:  NewSupplierRepository(db),
	}
}
