package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type productService struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

func NewProductService(products repository.ProductRepository, inventory repository.InventoryRepository) ProductService {
	return &productService{products: products, inventory: inventory}
}

func (s *productService) AddProduct(ctx context.Context, in AddProductInput) (*domain.Product, error) {
	product, err := s.products.GetByBrandModel(ctx, in.Brand, in.Model)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("looking up product: %w", err)
		}
		product = &domain.Product{
			Brand:           in.Brand,
			Model:           in.Model,
			Description:     in.Description,
			HourlyRateCents: in.HourlyRateCents,
			CoverURL:        in.CoverURL,
			Category:        in.Category,
			SupplierID:      in.SupplierID,
		}
		if err := s.products.Create(ctx, product); err != nil {
			return nil, fmt.Errorf("creating product: %w", err)
		}
	}

	unit := &domain.InventoryUnit{
		ProductID: product.ID,
		Color:     in.Color,
		Size:      in.Size,
		Status:    domain.UnitStatusAvailable,
	}
	if err := s.inventory.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("creating inventory unit: %w", err)
	}
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	available, err := s.inventory.CountAvailableByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: *product, AvailableQuantity: available}, nil
}

func (s *productService) ListAvailable(ctx context.Context) ([]domain.ProductSummary, error) {
	return s.products.ListAvailable(ctx)
}

func (s *productService) ListInventory(ctx context.Context) ([]domain.InventoryListing, error) {
	return s.inventory.ListWithProduct(ctx)
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return s.products.Update(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
