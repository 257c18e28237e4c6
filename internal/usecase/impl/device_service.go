package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/usecase"
)

type deviceService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.NotificationSettingsRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewDeviceService creates a new device service
func NewDeviceService(
	userRepo repository.UserRepository,
	settingsRepo repository.NotificationSettingsRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers an FCM token for the session user
func (s *deviceService) RegisterDevice(ctx context.Context, session *entity.Session, fcmToken string) error {
	token := strings.TrimSpace(fcmToken)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcmToken")
	}

	if _, err := s.userRepo.EnsureExists(ctx, entity.NewUser(session.Identity, s.now())); err != nil {
		return storeError(err, nil, nil, "ensure profile")
	}
	if err := s.userRepo.AddDeviceToken(ctx, session.UID, token); err != nil {
		return storeError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "add device token")
	}
	if err := s.settingsRepo.SaveIfMissing(ctx, session.UID, entity.DefaultNotificationConfig()); err != nil {
		return storeError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "store default reminders")
	}

	s.log(ctx).Info("Device registered", slog.String("uid", session.UID))

	return nil
}

// UnregisterDevice removes an FCM token from the session user
func (s *deviceService) UnregisterDevice(ctx context.Context, session *entity.Session, fcmToken string) error {
	token := strings.TrimSpace(fcmToken)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcmToken")
	}

	err := s.userRepo.RemoveDeviceTokens(ctx, session.UID, token)
	if err != nil && !isUserNotFound(err) {
		return storeError(err, nil, nil, "remove device token")
	}

	return nil
}
