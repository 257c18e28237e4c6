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

type userRepository struct {
	store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(clients *firebase.Clients) repository.UserRepository {
	return &userRepository{store{client: clients.Firestore}}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	snap, err := repo.users().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, dbError(err, "failed to find user by id")
	}

	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, dbError(err, "failed to decode user")
	}

	return model.ToUserDomain(snap.Ref.ID, &doc), nil
}

// EnsureExists relies on Create failing with AlreadyExists, so concurrent first
// requests never overwrite each other.
func (repo *userRepository) EnsureExists(ctx context.Context, defaults *entity.User) (bool, error) {
	if err := repo.ready(); err != nil {
		return false, err
	}

	_, err := repo.users().Doc(defaults.ID).Create(ctx, model.NewUserDocument(defaults))
	if err != nil {
		if isAlreadyExists(err) {
			return false, nil
		}

		return false, dbError(err, "failed to create user")
	}

	return true, nil
}

func (repo *userRepository) UpdateDisplayName(ctx context.Context, defaults *entity.User, displayName string) error {
	if err := repo.ready(); err != nil {
		return err
	}

	ref := repo.users().Doc(defaults.ID)
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return errors.WithStack(err)
		}
		if snap == nil || !snap.Exists() {
			doc := model.NewUserDocument(defaults)
			doc.DisplayName = displayName

			return tx.Create(ref, doc)
		}

		return tx.Update(ref, []firestore.Update{{Path: "displayName", Value: displayName}})
	})
	if err != nil {
		return dbError(err, "failed to update display name")
	}

	return nil
}

func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}

	return count(ctx, repo.users().Query, "failed to count users")
}

func (repo *userRepository) AddDeviceToken(ctx context.Context, id, token string) error {
	if err := repo.ready(); err != nil {
		return err
	}

	_, err := repo.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayUnion(token)},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return dbError(err, "failed to add device token")
	}

	return nil
}

func (repo *userRepository) RemoveDeviceTokens(ctx context.Context, id string, tokens ...string) error {
	if len(tokens) == 0 {
		return nil
	}
	if err := repo.ready(); err != nil {
		return err
	}

	_, err := repo.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayRemove(toAnySlice(tokens)...)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}

		return dbError(err, "failed to remove device tokens")
	}

	return nil
}
