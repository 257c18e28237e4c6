// Package service defines interfaces for external capabilities the domain depends on.
package service

import (
	"context"

	"manna/internal/domain/entity"
	"manna/internal/errors"
)

// Errors reported by an IdentityProvider.
var (
	ErrInvalidToken        = errors.New("invalid or expired id token")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrWeakPassword        = errors.New("weak password")
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrIdentityUnavailable = errors.New("identity provider is not configured")
)

// IdentityProvider verifies sign-ins and manages accounts of the external identity service.
type IdentityProvider interface {
	// VerifyIDToken checks a client issued ID token and returns who it belongs to.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error)

	// CreateUser registers a new e-mail and password account.
	CreateUser(ctx context.Context, email, password, displayName string) (*entity.Identity, error)

	// UpdateDisplayName changes the name shown for the account.
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
}
