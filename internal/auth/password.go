package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/jobledger/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// MinPasswordLength is the shortest password HashPassword accepts.
const MinPasswordLength = 8

// OwnerAuthenticator authenticates the single configured owner against a
// bcrypt hash.
type OwnerAuthenticator struct {
	owner models.User
}

// NewOwnerAuthenticator creates an authenticator for the owner.
func NewOwnerAuthenticator(name, passwordHash string) *OwnerAuthenticator {
	return &OwnerAuthenticator{owner: models.User{
		ID:           "owner:" + name,
		Name:         name,
		PasswordHash: passwordHash,
	}}
}

// Authenticate verifies name and password. Both failure cases return
// ErrInvalidCredentials.
func (a *OwnerAuthenticator) Authenticate(ctx context.Context, name, credential string) (*models.User, error) {
	nameOK := subtle.ConstantTimeCompare([]byte(name), []byte(a.owner.Name)) == 1
	// Always run bcrypt so a wrong name costs as much as a wrong password.
	err := bcrypt.CompareHashAndPassword([]byte(a.owner.PasswordHash), []byte(credential))
	if !nameOK || err != nil {
		return nil, ErrInvalidCredentials
	}
	owner := a.owner
	return &owner, nil
}

// HashPassword returns the bcrypt hash to configure as OWNER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
