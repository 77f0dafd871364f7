package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

const bcryptCost = 10

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Register(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, error) {
	existing, err := s.customers.GetByEmailOrCPF(ctx, in.Email, in.CPF)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("looking up customer: %w", err)
	}
	if existing != nil {
		return nil, ErrCustomerExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	customer := &domain.Customer{
		Name:         in.Name,
		Email:        in.Email,
		CPF:          in.CPF,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		AvatarURL:    in.AvatarURL,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *customerService) Update(ctx context.Context, customer *domain.Customer) error {
	existing, err := s.customers.GetByEmail(ctx, customer.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("looking up customer: %w", err)
	}
	if existing != nil && existing.ID != customer.ID {
		return ErrCustomerExists
	}
	return s.customers.Update(ctx, customer)
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
