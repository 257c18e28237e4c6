package usecase

import (
	"context"

	"manna/internal/domain/entity"
)

// MeditationInput represents the editable fields of a meditation
type MeditationInput struct {
	Title    string
	Category string
	AudioURL string
	Text     string
}

// ShareCode is a rendered QR code and the link it encodes
type ShareCode struct {
	URL string
	PNG []byte
}

// MeditationUsecase defines browsing and administration of meditations
type MeditationUsecase interface {
	// ListMeditations lists every meditation, or one category when category is not empty
	ListMeditations(ctx context.Context, category string) ([]*entity.Meditation, error)

	GetMeditation(ctx context.Context, id string) (*entity.Meditation, error)

	CreateMeditation(ctx context.Context, input *MeditationInput) (*entity.Meditation, error)

	UpdateMeditation(ctx context.Context, id string, input *MeditationInput) (*entity.Meditation, error)

	DeleteMeditation(ctx context.Context, id string) error

	// ShareMeditation renders the QR code of the meditation's public link
	ShareMeditation(ctx context.Context, id string) (*ShareCode, error)
}
