package usecase

import (
	"context"

	"manna/internal/domain/entity"
)

// FavoriteUsecase defines the favorites of the signed-in user
type FavoriteUsecase interface {
	IsFavorite(ctx context.Context, userID, meditationID string) (bool, error)

	// AddFavorite saves the meditation. Saving it twice keeps a single entry.
	AddFavorite(ctx context.Context, session *entity.Session, meditationID string) (*entity.Favorite, error)

	// RemoveFavorite drops the meditation. Removing an absent entry succeeds.
	RemoveFavorite(ctx context.Context, userID, meditationID string) error

	// ListFavorites returns the favorites in stored order
	ListFavorites(ctx context.Context, userID string) (entity.Favorites, error)
}
