package repository

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	GetByCode(ctx context.Context, code string) (*domain.Rental, error)
	// UpdateStatusIf transitions the rental from one status to another only if
	// the current status still matches. Returns false when the precondition
	// failed, i.e. a concurrent transition won. When activatedAt is non-nil it
	// is written together with the new status.
	UpdateStatusIf(ctx context.Context, id string, from, to domain.RentalStatus, activatedAt *time.Time) (bool, error)
	List(ctx context.Context, status string) ([]domain.Rental, error)
	ListByCustomerAndStatuses(ctx context.Context, customerID string, statuses []domain.RentalStatus) ([]domain.Rental, error)
	// ListExpiredPending returns pending rentals whose pickup deadline has
	// passed, for the recovery sweep.
	ListExpiredPending(ctx context.Context, now time.Time) ([]domain.Rental, error)
	// CodeInUse reports whether a non-terminal rental already holds the code.
	CodeInUse(ctx context.Context, code string) (bool, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, unit *domain.InventoryUnit) error
	GetByID(ctx context.Context, id string) (*domain.InventoryUnit, error)
	// Claim reserves the unit only if it is still available, in a single
	// conditional update. Returns false when someone else claimed it first.
	Claim(ctx context.Context, id string) (bool, error)
	// Release puts a reserved unit back to available. Returns false when the
	// unit was not reserved, which makes double release a no-op.
	Release(ctx context.Context, id string) (bool, error)
	ListWithProduct(ctx context.Context) ([]domain.InventoryListing, error)
	CountAvailableByProduct(ctx context.Context, productID string) (int32, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByBrandModel(ctx context.Context, brand, model string) (*domain.Product, error)
	// ListAvailable returns products that have at least one available unit,
	// with the free-unit count.
	ListAvailable(ctx context.Context) ([]domain.ProductSummary, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type PendencyRepository interface {
	Create(ctx context.Context, pendency *domain.Pendency) error
	GetByID(ctx context.Context, id string) (*domain.Pendency, error)
	HasUnresolved(ctx context.Context, customerID string) (bool, error)
	// Resolve marks the pendency settled. Returns false when it was already
	// resolved or does not exist.
	Resolve(ctx context.Context, id string, resolvedAt time.Time) (bool, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Pendency, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByEmailOrCPF(ctx context.Context, email, cpf string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id string) error
}
