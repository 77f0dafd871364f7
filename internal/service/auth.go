package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/security"
)

type authService struct {
	customers repository.CustomerRepository
	tokens    security.TokenManager
}

func NewAuthService(customers repository.CustomerRepository, tokens security.TokenManager) AuthService {
	return &authService{customers: customers, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("loading customer: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(customer.ID, customer.Email)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}
	return token, customer, nil
}
