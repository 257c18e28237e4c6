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

const fieldJourney = "jornada"

type journeyRepository struct {
	store
}

// NewJourneyRepository is the constructor for journeyRepository.
func NewJourneyRepository(clients *firebase.Clients) repository.JourneyRepository {
	return &journeyRepository{store{client: clients.Firestore}}
}

func (repo *journeyRepository) Find(ctx context.Context, userID string) (entity.Journey, bool, error) {
	if err := repo.ready(); err != nil {
		return entity.Journey{}, false, err
	}

	snap, err := repo.users().Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return entity.Journey{}, false, repository.ErrUserNotFound
		}

		return entity.Journey{}, false, dbError(err, "failed to load journey")
	}

	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return entity.Journey{}, false, dbError(err, "failed to decode journey")
	}
	if doc.Journey == nil {
		return entity.Journey{}, false, nil
	}

	return doc.Journey.ToDomain(), true, nil
}

func (repo *journeyRepository) Save(ctx context.Context, userID string, journey entity.Journey) error {
	if err := repo.ready(); err != nil {
		return err
	}

	_, err := repo.users().Doc(userID).Update(ctx, []firestore.Update{
		{Path: fieldJourney, Value: model.FromJourneyDomain(journey)},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return dbError(err, "failed to save journey")
	}

	return nil
}

func (repo *journeyRepository) Update(ctx context.Context, userID string, fn func(*entity.Journey) error) (entity.Journey, error) {
	if err := repo.ready(); err != nil {
		return entity.Journey{}, err
	}

	ref := repo.users().Doc(userID)

	var result entity.Journey
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
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

		var journey entity.Journey
		if doc.Journey != nil {
			journey = doc.Journey.ToDomain()
		}
		if err := fn(&journey); err != nil {
			return err
		}
		result = journey

		return tx.Update(ref, []firestore.Update{{Path: fieldJourney, Value: model.FromJourneyDomain(journey)}})
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.Journey{}, repository.ErrUserNotFound
		}

		return entity.Journey{}, dbError(err, "failed to update journey")
	}

	return result, nil
}
