package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"equiprent-backend/internal/domain"
)

func TestCustomerService_Register(t *testing.T) {
	ctx := context.Background()

	input := RegisterCustomerInput{
		Name:     "Ana",
		CPF:      "12345678900",
		Email:    "ana@test.com",
		Password: "secret123",
	}

	t.Run("Success hashes the password", func(t *testing.T) {
		customers := new(MockCustomerRepo)
		svc := NewCustomerService(customers)

		customers.On("GetByEmailOrCPF", ctx, "ana@test.com", "12345678900").Return(nil, sql.ErrNoRows)
		customers.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil)

		customer, err := svc.Register(ctx, input)
		assert.NoError(t, err)
		assert.NotEqual(t, "secret123", customer.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte("secret123")))
	})

	t.Run("Duplicate email or cpf", func(t *testing.T) {
		customers := new(MockCustomerRepo)
		svc := NewCustomerService(customers)

		customers.On("GetByEmailOrCPF", ctx, "ana@test.com", "12345678900").
			Return(&domain.Customer{ID: "cust-1"}, nil)

		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrCustomerExists)
		customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Email taken by another customer", func(t *testing.T) {
		customers := new(MockCustomerRepo)
		svc := NewCustomerService(customers)

		customers.On("GetByEmail", ctx, "ana@test.com").Return(&domain.Customer{ID: "other"}, nil)

		err := svc.Update(ctx, &domain.Customer{ID: "cust-1", Email: "ana@test.com"})
		assert.ErrorIs(t, err, ErrCustomerExists)
	})

	t.Run("Own email is fine", func(t *testing.T) {
		customers := new(MockCustomerRepo)
		svc := NewCustomerService(customers)

		customers.On("GetByEmail", ctx, "ana@test.com").Return(&domain.Customer{ID: "cust-1"}, nil)
		customers.On("Update", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil)

		err := svc.Update(ctx, &domain.Customer{ID: "cust-1", Email: "ana@test.com"})
		assert.NoError(t, err)
	})
}
