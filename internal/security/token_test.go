package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	m := NewTokenManager(testSecret, 60)

	token, err := m.Generate("cust-1", "ana@test.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "cust-1", claims.CustomerID)
	assert.Equal(t, "ana@test.com", claims.Email)
}

func TestTokenManager_Validate_WrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, 60)
	other := NewTokenManager("another-secret-another-secret-xx", 60)

	token, err := m.Generate("cust-1", "ana@test.com")
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Validate_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, -1)

	token, err := m.Generate("cust-1", "ana@test.com")
	assert.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Validate_Garbage(t *testing.T) {
	m := NewTokenManager(testSecret, 60)
	_, err := m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
