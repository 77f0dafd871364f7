package service

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"
)

// ReturnResult is the outcome of a return confirmation. When the return was
// late, Pendency carries the newly created debt; otherwise only Rental is set.
type ReturnResult struct {
	HasPendency bool
	Rental      *domain.Rental
	Pendency    *domain.Pendency
}

type RentalService interface {
	// Create reserves a unit for the customer and returns the pickup code,
	// the only rental detail exposed at reservation time.
	Create(ctx context.Context, customerID, unitID string, durationMinutes int32) (string, error)
	ConfirmPickup(ctx context.Context, code string) (*domain.Rental, error)
	ConfirmReturn(ctx context.Context, customerID, code string) (*ReturnResult, error)
	List(ctx context.Context, status string) ([]domain.Rental, error)
	// CustomerRentals returns the customer's active and completed rentals.
	CustomerRentals(ctx context.Context, customerID string) (active, completed []domain.Rental, err error)
}

// RentalExpiryScheduler arms the one-shot pickup-deadline check for a rental.
type RentalExpiryScheduler interface {
	Schedule(rentalID string, dueAt time.Time)
}

type AddProductInput struct {
	Brand           string
	Model           string
	Description     string
	HourlyRateCents int32
	CoverURL        string
	Category        string
	SupplierID      string
	Color           string
	Size            string
}

// ProductDetail is a product plus its current availability.
type ProductDetail struct {
	domain.Product
	AvailableQuantity int32 `json:"available_quantity"`
}

type ProductService interface {
	// AddProduct registers a new inventory unit; the product definition is
	// created on first sight of a brand/model pair and reused afterwards.
	AddProduct(ctx context.Context, in AddProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
	ListAvailable(ctx context.Context) ([]domain.ProductSummary, error)
	ListInventory(ctx context.Context) ([]domain.InventoryListing, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type RegisterCustomerInput struct {
	Name      string
	CPF       string
	Phone     string
	Address   string
	Email     string
	Password  string
	AvatarURL string
}

type CustomerService interface {
	Register(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	// Login verifies the credentials and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, *domain.Customer, error)
}

type SupplierService interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	List(ctx context.Context) ([]domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id string) error
}

type PendencyService interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Pendency, error)
	// Resolve settles an outstanding pendency, lifting the rental block.
	Resolve(ctx context.Context, id string) (*domain.Pendency, error)
}

type EmailService interface {
	SendPendencyNotice(ctx context.Context, email, name, code string, valueCents, delayMinutes int32) error
	SendCancellationNotice(ctx context.Context, email, name, code string) error
}
