package usecase

import (
	"context"

	"manna/internal/domain/entity"
)

// MannaInput represents the editable fields of a daily manna entry
type MannaInput struct {
	Date               string
	ScriptureText      string
	ScriptureReference string
	Commentary         string
}

// MannaUsecase defines the daily devotional
type MannaUsecase interface {
	// Today returns the entry of the current day. found is false when none was published.
	Today(ctx context.Context) (manna *entity.DailyManna, found bool, err error)

	ListManna(ctx context.Context) ([]*entity.DailyManna, error)

	GetManna(ctx context.Context, id string) (*entity.DailyManna, error)

	CreateManna(ctx context.Context, input *MannaInput) (*entity.DailyManna, error)

	UpdateManna(ctx context.Context, id string, input *MannaInput) (*entity.DailyManna, error)

	DeleteManna(ctx context.Context, id string) error
}
