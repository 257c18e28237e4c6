package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/usecase"
)

type notificationSettingsService struct {
	settingsRepo repository.NotificationSettingsRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewNotificationSettingsService creates the usecase for reminder preferences.
func NewNotificationSettingsService(settingsRepo repository.NotificationSettingsRepository, logger *slog.Logger) usecase.NotificationSettingsUsecase {
	return &notificationSettingsService{
		settingsRepo: settingsRepo,
		now:          time.Now,
		logger:       logger,
	}
}

func (srv *notificationSettingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationSettingsService) GetSettings(ctx context.Context, userID string) (*entity.NotificationConfig, error) {
	stored, err := srv.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		defaults := entity.DefaultNotificationConfig()

		return &defaults, nil
	}

	return stored, nil
}

func (srv *notificationSettingsService) UpdateSettings(ctx context.Context, session *entity.Session, cfg *entity.NotificationConfig) (*entity.NotificationConfig, error) {
	updated := *cfg
	if err := updated.Normalize(); err != nil {
		return nil, domainerrors.ErrInvalidNotificationSettings.WithDetails(err.Error())
	}

	stored, err := srv.find(ctx, session.UID)
	if err != nil {
		return nil, err
	}
	updated.LastNotified = ""
	if stored != nil {
		updated.LastNotified = stored.LastNotified
	}

	if err := srv.settingsRepo.Save(ctx, entity.NewUser(session.Identity, srv.now()), updated); err != nil {
		return nil, storeError(err, nil, nil, "save notification settings")
	}

	srv.log(ctx).Info("Notification settings updated",
		slog.String("uid", session.UID),
		slog.Bool("active", updated.Active),
	)

	return &updated, nil
}

func (srv *notificationSettingsService) find(ctx context.Context, userID string) (*entity.NotificationConfig, error) {
	stored, err := srv.settingsRepo.Find(ctx, userID)
	switch {
	case isUserNotFound(err):
		return nil, nil
	case err != nil:
		return nil, storeError(err, nil, nil, "find notification settings")
	}

	return stored, nil
}
