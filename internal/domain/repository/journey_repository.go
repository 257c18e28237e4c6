package repository

import (
	"context"

	"manna/internal/domain/entity"
)

// JourneyRepository manages the practice counters stored on a user document.
type JourneyRepository interface {
	// Find returns the stored journey. stored is false when the user exists without one.
	// It returns ErrUserNotFound when the user document does not exist.
	Find(ctx context.Context, userID string) (journey entity.Journey, stored bool, err error)

	// Save overwrites the journey of an existing user.
	Save(ctx context.Context, userID string, journey entity.Journey) error

	// Update applies fn to the current journey atomically and returns the result.
	// It returns ErrUserNotFound when the user document does not exist.
	Update(ctx context.Context, userID string, fn func(*entity.Journey) error) (entity.Journey, error)
}
