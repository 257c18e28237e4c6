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
	"manna/internal/domain/service"
	"manna/internal/errors"
	"manna/internal/usecase"
)

type profileService struct {
	identity service.IdentityProvider
	userRepo repository.UserRepository
	now      func() time.Time
	logger   *slog.Logger
}

// NewProfileService creates the usecase for the signed-in user's profile.
func NewProfileService(identity service.IdentityProvider, userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		identity: identity,
		userRepo: userRepo,
		now:      time.Now,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, session *entity.Session) (*entity.User, error) {
	defaults := entity.NewUser(session.Identity, srv.now())
	created, err := srv.userRepo.EnsureExists(ctx, defaults)
	if err != nil {
		return nil, storeError(err, nil, nil, "ensure profile")
	}
	if created {
		srv.log(ctx).Info("Profile created on first access", slog.String("uid", session.UID))

		return defaults, nil
	}

	user, err := srv.userRepo.FindByID(ctx, session.UID)
	if err != nil {
		return nil, storeError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "find profile")
	}

	return user, nil
}

func (srv *profileService) UpdateDisplayName(ctx context.Context, session *entity.Session, displayName string) (*entity.User, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("displayName")
	}

	if err := srv.identity.UpdateDisplayName(ctx, session.UID, name); err != nil {
		if errors.Is(err, service.ErrIdentityUnavailable) {
			return nil, domainerrors.ErrServiceUnavailable.WrapMessage("update display name")
		}
		srv.log(ctx).Error("Failed to update identity display name",
			slog.String("uid", session.UID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrProfileUpdateFailed.WrapMessage(err.Error())
	}

	defaults := entity.NewUser(session.Identity, srv.now())
	defaults.DisplayName = name
	if err := srv.userRepo.UpdateDisplayName(ctx, defaults, name); err != nil {
		return nil, storeError(err, nil, nil, "update display name")
	}

	return srv.GetProfile(ctx, &entity.Session{
		Identity: entity.Identity{UID: session.UID, DisplayName: name, Email: session.Email},
		Role:     session.Role,
	})
}
