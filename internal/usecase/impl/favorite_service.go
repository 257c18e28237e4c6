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

type favoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	meditationRepo repository.MeditationRepository
	now            func() time.Time
	logger         *slog.Logger
}

// NewFavoriteService creates the usecase managing saved meditations.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	meditationRepo repository.MeditationRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:   favoriteRepo,
		meditationRepo: meditationRepo,
		now:            time.Now,
		logger:         logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoriteService) IsFavorite(ctx context.Context, userID, meditationID string) (bool, error) {
	favorites, err := srv.ListFavorites(ctx, userID)
	if err != nil {
		return false, err
	}

	return favorites.Contains(meditationID), nil
}

func (srv *favoriteService) AddFavorite(ctx context.Context, session *entity.Session, meditationID string) (*entity.Favorite, error) {
	meditation, err := srv.meditationRepo.FindByID(ctx, meditationID)
	if err != nil {
		return nil, storeError(err, repository.ErrMeditationNotFound, domainerrors.ErrMeditationNotFound, "find meditation")
	}

	now := srv.now()
	fav := entity.NewFavorite(meditation, now)
	stored, added, err := srv.favoriteRepo.Add(ctx, entity.NewUser(session.Identity, now), fav)
	if err != nil {
		srv.log(ctx).Error("Failed to add favorite",
			slog.String("uid", session.UID),
			slog.String("meditation_id", meditationID),
			slog.Any("error", err),
		)

		return nil, storeError(err, nil, nil, "add favorite")
	}
	if !added {
		srv.log(ctx).Debug("Meditation already in favorites", slog.String("meditation_id", meditationID))
	}

	return &stored, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, meditationID string) error {
	if _, err := srv.favoriteRepo.Remove(ctx, userID, meditationID); err != nil {
		srv.log(ctx).Error("Failed to remove favorite",
			slog.String("uid", userID),
			slog.String("meditation_id", meditationID),
			slog.Any("error", err),
		)

		return storeError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "remove favorite")
	}

	return nil
}

func (srv *favoriteService) ListFavorites(ctx context.Context, userID string) (entity.Favorites, error) {
	favorites, err := srv.favoriteRepo.List(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.String("uid", userID), slog.Any("error", err))

		return nil, storeError(err, nil, nil, "list favorites")
	}
	if favorites == nil {
		favorites = entity.Favorites{}
	}

	return favorites, nil
}
