package usecase

import (
	"context"

	"manna/internal/domain/achievement"
	"manna/internal/domain/entity"
)

// JourneyOverview is the journey with the achievements derived from it
type JourneyOverview struct {
	Journey  entity.Journey
	Unlocked []achievement.Achievement
	Upcoming []achievement.Achievement
}

// RecordSessionInput describes one finished meditation
type RecordSessionInput struct {
	MeditationID string
	Minutes      int
}

// JourneyUsecase defines practice tracking
type JourneyUsecase interface {
	GetJourney(ctx context.Context, userID string) (*JourneyOverview, error)

	RecordSession(ctx context.Context, session *entity.Session, input *RecordSessionInput) (*JourneyOverview, error)
}
