// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"manna/internal/domain/entity"
	"manna/internal/errors"
)

var (
	// ErrUserNotFound is returned when a user document does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable is returned by every repository when the data store is not configured.
	ErrStoreUnavailable = errors.New("data store is not configured")
)

// UserRepository defines the operations on user profile documents.
type UserRepository interface {
	// FindByID retrieves a user by identity UID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// EnsureExists writes the given default profile when no document exists yet.
	// It reports whether the document was created.
	EnsureExists(ctx context.Context, defaults *entity.User) (bool, error)

	// UpdateDisplayName sets the display name, creating the document from defaults when missing.
	UpdateDisplayName(ctx context.Context, defaults *entity.User, displayName string) error

	// Count returns the number of user documents.
	Count(ctx context.Context) (int64, error)

	// AddDeviceToken registers a push token for the user. Duplicates are ignored.
	AddDeviceToken(ctx context.Context, id, token string) error

	// RemoveDeviceTokens drops the given push tokens from the user.
	RemoveDeviceTokens(ctx context.Context, id string, tokens ...string) error
}
