package impl

import (
	"context"
	"log/slog"

	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/domain/service"
	"manna/internal/errors"
	"manna/internal/usecase"
)

type sessionService struct {
	identity service.IdentityProvider
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewSessionService creates the usecase resolving request sessions.
func NewSessionService(identity service.IdentityProvider, userRepo repository.UserRepository, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		identity: identity,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Resolve(ctx context.Context, idToken string) (*entity.Session, error) {
	if idToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	identity, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, service.ErrIdentityUnavailable) {
			return nil, domainerrors.ErrServiceUnavailable.WrapMessage("verify id token")
		}
		srv.log(ctx).Debug("ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	session := &entity.Session{Identity: *identity, Role: entity.RoleUser}

	user, err := srv.userRepo.FindByID(ctx, identity.UID)
	switch {
	case err == nil:
		session.Role = user.Role
		if session.DisplayName == "" {
			session.DisplayName = user.DisplayName
		}
	case errors.Is(err, repository.ErrUserNotFound):
	default:
		srv.log(ctx).Warn("Failed to read user role, falling back to user",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)
	}

	if !session.Role.IsValid() {
		session.Role = entity.RoleUser
	}

	return session, nil
}
