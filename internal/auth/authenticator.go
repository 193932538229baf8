// Package auth verifies the owner's credentials and issues session tokens.
package auth

import (
	"context"

	"github.com/mmynk/jobledger/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping the configured single owner for another
// method (stored accounts, passkeys, OAuth) without changing the service layer.
type Authenticator interface {
	// Authenticate verifies the credentials and returns the user if successful.
	Authenticate(ctx context.Context, name, credential string) (*models.User, error)
}
