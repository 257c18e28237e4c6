package usecase

import (
	"context"

	"manna/internal/domain/entity"
)

// ProfileUsecase defines operations on the signed-in user's own profile
type ProfileUsecase interface {
	// GetProfile returns the stored profile, creating it on first access
	GetProfile(ctx context.Context, session *entity.Session) (*entity.User, error)

	// UpdateDisplayName renames the user in the identity provider and the profile document
	UpdateDisplayName(ctx context.Context, session *entity.Session, displayName string) (*entity.User, error)
}
