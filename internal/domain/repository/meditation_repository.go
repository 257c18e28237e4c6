package repository

import (
	"context"

	"manna/internal/domain/entity"
	"manna/internal/errors"
)

// ErrMeditationNotFound is returned when a meditation does not exist.
var ErrMeditationNotFound = errors.New("meditation not found")

// MeditationRepository defines the persistence operations for meditations.
type MeditationRepository interface {
	// List returns every meditation ordered by category then title.
	List(ctx context.Context) ([]*entity.Meditation, error)

	// ListByCategory returns the meditations of one category ordered by title.
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Meditation, error)

	FindByID(ctx context.Context, id string) (*entity.Meditation, error)

	// Create stores a new meditation and assigns its ID.
	Create(ctx context.Context, meditation *entity.Meditation) error

	// Update overwrites the editable fields, keeping the creation time.
	Update(ctx context.Context, meditation *entity.Meditation) error

	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}
