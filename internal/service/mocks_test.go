package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"equiprent-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetByCode(ctx context.Context, code string) (*domain.Rental, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.RentalStatus, activatedAt *time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, activatedAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, status string) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomerAndStatuses(ctx context.Context, customerID string, statuses []domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, customerID, statuses)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListExpiredPending(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CodeInUse(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Create(ctx context.Context, unit *domain.InventoryUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}
func (m *MockInventoryRepo) GetByID(ctx context.Context, id string) (*domain.InventoryUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryUnit), args.Error(1)
}
func (m *MockInventoryRepo) Claim(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockInventoryRepo) Release(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockInventoryRepo) ListWithProduct(ctx context.Context) ([]domain.InventoryListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InventoryListing), args.Error(1)
}
func (m *MockInventoryRepo) CountAvailableByProduct(ctx context.Context, productID string) (int32, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int32), args.Error(1)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) GetByBrandModel(ctx context.Context, brand, model string) (*domain.Product, error) {
	args := m.Called(ctx, brand, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListAvailable(ctx context.Context) ([]domain.ProductSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProductSummary), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPendencyRepo
type MockPendencyRepo struct {
	mock.Mock
}

func (m *MockPendencyRepo) Create(ctx context.Context, pendency *domain.Pendency) error {
	args := m.Called(ctx, pendency)
	return args.Error(0)
}
func (m *MockPendencyRepo) GetByID(ctx context.Context, id string) (*domain.Pendency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pendency), args.Error(1)
}
func (m *MockPendencyRepo) HasUnresolved(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockPendencyRepo) Resolve(ctx context.Context, id string, resolvedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, resolvedAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockPendencyRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Pendency, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Pendency), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmailOrCPF(ctx context.Context, email, cpf string) (*domain.Customer, error) {
	args := m.Called(ctx, email, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSupplierRepo
type MockSupplierRepo struct {
	mock.Mock
}

func (m *MockSupplierRepo) Create(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}
func (m *MockSupplierRepo) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}
func (m *MockSupplierRepo) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}
func (m *MockSupplierRepo) List(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Supplier), args.Error(1)
}
func (m *MockSupplierRepo) Update(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}
func (m *MockSupplierRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPendencyNotice(ctx context.Context, email, name, code string, valueCents, delayMinutes int32) error {
	args := m.Called(ctx, email, name, code, valueCents, delayMinutes)
	return args.Error(0)
}
func (m *MockEmailService) SendCancellationNotice(ctx context.Context, email, name, code string) error {
	args := m.Called(ctx, email, name, code)
	return args.Error(0)
}

// MockExpiry
type MockExpiry struct {
	mock.Mock
}

func (m *MockExpiry) Schedule(rentalID string, dueAt time.Time) {
	m.Called(rentalID, dueAt)
}
