package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type supplierService struct {
	suppliers repository.SupplierRepository
}

func NewSupplierService(suppliers repository.SupplierRepository) SupplierService {
	return &supplierService{suppliers: suppliers}
}

func (s *supplierService) Create(ctx context.Context, supplier *domain.Supplier) error {
	existing, err := s.suppliers.GetByEmail(ctx, supplier.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("looking up supplier: %w", err)
	}
	if existing != nil {
		return ErrSupplierExists
	}
	return s.suppliers.Create(ctx, supplier)
}

func (s *supplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *supplierService) Update(ctx context.Context, supplier *domain.Supplier) error {
	existing, err := s.suppliers.GetByEmail(ctx, supplier.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("looking up supplier: %w", err)
	}
	if existing != nil && existing.ID != supplier.ID {
		return ErrSupplierExists
	}
	return s.suppliers.Update(ctx, supplier)
}

func (s *supplierService) Delete(ctx context.Context, id string) error {
	return s.suppliers.Delete(ctx, id)
}
