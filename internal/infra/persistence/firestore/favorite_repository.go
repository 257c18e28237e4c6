package firestore

import (
	"context"

	"manna/internal/domain/entity"
	"manna/internal/domain/repository"
	"manna/internal/errors"
	"manna/internal/infra/firebase"
	"manna/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

const fieldFavorites = "favoritos"

type favoriteRepository struct {
	store
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(clients *firebase.Clients) repository.FavoriteRepository {
	return &favoriteRepository{store{client: clients.Firestore}}
}

func (repo *favoriteRepository) List(ctx context.Context, userID string) (entity.Favorites, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	snap, err := repo.users().Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return entity.Favorites{}, nil
		}

		return nil, dbError(err, "failed to load favorites")
	}

	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, dbError(err, "failed to decode favorites")
	}

	return model.ToFavoritesDomain(doc.Favorites), nil
}

// Add reads and writes the favorites array in one transaction, so the same
// meditation is never stored twice.
func (repo *favoriteRepository) Add(ctx context.Context, defaults *entity.User, fav entity.Favorite) (entity.Favorite, bool, error) {
	if err := repo.ready(); err != nil {
		return entity.Favorite{}, false, err
	}

	ref := repo.users().Doc(defaults.ID)

	var (
		stored entity.Favorite
		added  bool
	)
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		stored, added = fav, false

		snap, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return errors.WithStack(err)
		}

		if snap == nil || !snap.Exists() {
			doc := model.NewUserDocument(defaults)
			doc.Favorites = []model.FavoriteDocument{model.FromFavoriteDomain(fav)}
			added = true

			return tx.Create(ref, doc)
		}

		var doc model.UserDocument
		if err := snap.DataTo(&doc); err != nil {
			return errors.WithStack(err)
		}

		favs := model.ToFavoritesDomain(doc.Favorites)
		if existing, ok := favs.Find(fav.MeditationID); ok {
			stored = existing

			return nil
		}
		added = true

		return tx.Update(ref, []firestore.Update{
			{Path: fieldFavorites, Value: append(doc.Favorites, model.FromFavoriteDomain(fav))},
		})
	})
	if err != nil {
		return entity.Favorite{}, false, dbError(err, "failed to add favorite")
	}

	return stored, added, nil
}

func (repo *favoriteRepository) Remove(ctx context.Context, userID, meditationID string) (bool, error) {
	if err := repo.ready(); err != nil {
		return false, err
	}

	ref := repo.users().Doc(userID)

	var removed bool
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		removed = false

		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrUserNotFound
			}

			return errors.WithStack(err)
		}

		var doc model.UserDocument
		if err := snap.DataTo(&doc); err != nil {
			return errors.WithStack(err)
		}

		favs := model.ToFavoritesDomain(doc.Favorites)
		if !favs.Contains(meditationID) {
			return nil
		}
		removed = true

		kept := make([]model.FavoriteDocument, 0, len(doc.Favorites))
		for _, f := range doc.Favorites {
			if f.ID != meditationID {
				kept = append(kept, f)
			}
		}

		return tx.Update(ref, []firestore.Update{{Path: fieldFavorites, Value: kept}})
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, repository.ErrUserNotFound
		}

		return false, dbError(err, "failed to remove favorite")
	}

	return removed, nil
}
