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

	"go.uber.org/fx"
)

// MinPasswordLength is the shortest password the identity provider accepts.
const MinPasswordLength = 6

type userService struct {
	identity service.IdentityProvider
	userRepo repository.UserRepository
	now      func() time.Time
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Identity service.IdentityProvider
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		identity: params.Identity,
		userRepo: params.UserRepo,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.DisplayName)
	if email == "" || input.Password == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if len(input.Password) < MinPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	identity, err := srv.identity.CreateUser(ctx, email, input.Password, name)
	if err != nil {
		return nil, srv.signUpError(ctx, err)
	}

	user := entity.NewUser(*identity, srv.now())
	if user.DisplayName == "" {
		user.DisplayName = name
	}
	if _, err := srv.userRepo.EnsureExists(ctx, user); err != nil {
		// The profile is created again on first access.
		srv.log(ctx).Error("Failed to create profile after sign-up",
			slog.String("uid", user.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("User registered", slog.String("uid", user.ID))

	return user, nil
}

func (srv *userService) signUpError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return domainerrors.ErrEmailAlreadyInUse
	case errors.Is(err, service.ErrInvalidEmail):
		return domainerrors.ErrInvalidEmail
	case errors.Is(err, service.ErrWeakPassword):
		return domainerrors.ErrWeakPassword
	case errors.Is(err, service.ErrIdentityUnavailable):
		return domainerrors.ErrServiceUnavailable.WrapMessage("create account")
	default:
		srv.log(ctx).Error("Sign-up failed", slog.Any("error", err))

		return domainerrors.ErrSignUpFailed.WrapMessage(err.Error())
	}
}
