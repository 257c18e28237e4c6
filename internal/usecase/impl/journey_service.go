package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/achievement"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/usecase"

	"go.uber.org/fx"
)

// MaxSessionMinutes bounds the length of a single recorded session.
const MaxSessionMinutes = 24 * 60

type journeyService struct {
	journeyRepo repository.JourneyRepository
	userRepo    repository.UserRepository
	location    *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

// JourneyServiceParams holds dependencies for JourneyService, injected by Fx.
type JourneyServiceParams struct {
	fx.In

	JourneyRepo repository.JourneyRepository
	UserRepo    repository.UserRepository
	Location    *time.Location
	Logger      *slog.Logger
}

// NewJourneyService creates the usecase tracking meditation practice.
func NewJourneyService(params JourneyServiceParams) usecase.JourneyUsecase {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}

	return &journeyService{
		journeyRepo: params.JourneyRepo,
		userRepo:    params.UserRepo,
		location:    loc,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *journeyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *journeyService) GetJourney(ctx context.Context, userID string) (*usecase.JourneyOverview, error) {
	now := srv.now().In(srv.location)
	journey, stored, err := srv.journeyRepo.Find(ctx, userID)
	switch {
	case isUserNotFound(err):
		return overview(entity.Journey{}, now), nil
	case err != nil:
		return nil, storeError(err, nil, nil, "find journey")
	}

	if !stored {
		if err := srv.journeyRepo.Save(ctx, userID, entity.Journey{}); err != nil {
			srv.log(ctx).Warn("Failed to store initial journey", slog.String("uid", userID), slog.Any("error", err))
		}
	}

	return overview(journey, now), nil
}

func (srv *journeyService) RecordSession(ctx context.Context, session *entity.Session, input *usecase.RecordSessionInput) (*usecase.JourneyOverview, error) {
	if input.Minutes < 0 || input.Minutes > MaxSessionMinutes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("minutes")
	}

	now := srv.now().In(srv.location)
	if _, err := srv.userRepo.EnsureExists(ctx, entity.NewUser(session.Identity, now)); err != nil {
		return nil, storeError(err, nil, nil, "ensure profile")
	}

	journey, err := srv.journeyRepo.Update(ctx, session.UID, func(j *entity.Journey) error {
		j.RecordSession(now, input.Minutes)

		return nil
	})
	if err != nil {
		return nil, storeError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "record session")
	}

	srv.log(ctx).Info("Meditation session recorded",
		slog.String("uid", session.UID),
		slog.String("meditation_id", input.MeditationID),
		slog.Int("minutes", input.Minutes),
		slog.Int("streak", journey.ConsecutiveDays),
	)

	return overview(journey, now), nil
}

// overview reports counters as they read at now. Achievements come from the stored
// counters so an earned streak badge stays unlocked after the streak ends.
func overview(j entity.Journey, now time.Time) *usecase.JourneyOverview {
	return &usecase.JourneyOverview{
		Journey:  j.AsOf(now),
		Unlocked: achievement.Unlocked(j),
		Upcoming: achievement.Upcoming(j, achievement.DefaultUpcomingLimit),
	}
}
