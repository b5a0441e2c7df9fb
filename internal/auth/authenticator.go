// Package auth registers and authenticates household members and issues
// their session tokens.
package auth

import (
	"context"

	"github.com/mmynk/dormshare/internal/models"
)

// Authenticator verifies who a caller is. Implementations differ in the
// credential they accept; the services only see this interface.
type Authenticator interface {
	// Register creates an account for email with the given credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account matching email and credential.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential reports whether credential is acceptable for a new account.
	ValidateCredential(credential string) error
}
