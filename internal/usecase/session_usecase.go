// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"manna/internal/domain/entity"
)

// SessionUsecase turns a client ID token into a request session.
type SessionUsecase interface {
	// Resolve verifies the token and resolves the role of its owner.
	// A user without a stored role is a regular user.
	Resolve(ctx context.Context, idToken string) (*entity.Session, error)
}
