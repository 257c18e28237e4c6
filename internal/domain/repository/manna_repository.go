package repository

import (
	"context"

	"manna/internal/domain/entity"
	"manna/internal/errors"
)

var (
	// ErrMannaNotFound is returned when a daily manna entry does not exist.
	ErrMannaNotFound = errors.New("manna not found")
	// ErrMannaDateTaken is returned when another entry already uses the date.
	ErrMannaDateTaken = errors.New("manna date already taken")
)

// MannaRepository defines the persistence operations for daily manna entries.
// At most one entry exists per date.
type MannaRepository interface {
	// List returns every entry, most recent date first.
	List(ctx context.Context) ([]*entity.DailyManna, error)

	FindByID(ctx context.Context, id string) (*entity.DailyManna, error)

	// FindByDate returns the entry of a YYYY-MM-DD date or ErrMannaNotFound.
	FindByDate(ctx context.Context, date string) (*entity.DailyManna, error)

	// Create stores a new entry and assigns its ID. It returns ErrMannaDateTaken
	// when the date is already used.
	Create(ctx context.Context, manna *entity.DailyManna) error

	// Update overwrites an entry. It returns ErrMannaDateTaken when the new date
	// belongs to another entry.
	Update(ctx context.Context, manna *entity.DailyManna) error

	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}
