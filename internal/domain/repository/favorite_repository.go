package repository

import (
	"context"

	"manna/internal/domain/entity"
)

// FavoriteRepository manages the favorites list stored on a user document.
type FavoriteRepository interface {
	// List returns the favorites in stored order. A missing user yields an empty list.
	List(ctx context.Context, userID string) (entity.Favorites, error)

	// Add appends fav unless the meditation is already saved. A missing user document
	// is created from defaults. It returns the stored entry and reports whether it was appended.
	Add(ctx context.Context, defaults *entity.User, fav entity.Favorite) (entity.Favorite, bool, error)

	// Remove drops every entry for meditationID. It returns ErrUserNotFound when the
	// user document does not exist and reports whether anything was removed.
	Remove(ctx context.Context, userID, meditationID string) (bool, error)
}
