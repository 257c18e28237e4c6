package firestore

import (
	"context"

	"manna/internal/domain/constants"
	"manna/internal/domain/entity"
	"manna/internal/domain/repository"
	"manna/internal/infra/firebase"
	"manna/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type meditationRepository struct {
	store
}

// NewMeditationRepository is the constructor for meditationRepository.
func NewMeditationRepository(clients *firebase.Clients) repository.MeditationRepository {
	return &meditationRepository{store{client: clients.Firestore}}
}

func (repo *meditationRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionMeditations)
}

func (repo *meditationRepository) List(ctx context.Context) ([]*entity.Meditation, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	q := repo.collection().OrderBy("categoria", firestore.Asc).OrderBy("titulo", firestore.Asc)

	return repo.query(ctx, q, "failed to list meditations")
}

func (repo *meditationRepository) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Meditation, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	q := repo.collection().Where("categoria", "==", category.Label()).OrderBy("titulo", firestore.Asc)

	return repo.query(ctx, q, "failed to list meditations by category")
}

func (repo *meditationRepository) FindByID(ctx context.Context, id string) (*entity.Meditation, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMeditationNotFound
		}

		return nil, dbError(err, "failed to find meditation by id")
	}

	var doc model.MeditationDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, dbError(err, "failed to decode meditation")
	}

	return model.ToMeditationDomain(snap.Ref.ID, &doc), nil
}

func (repo *meditationRepository) Create(ctx context.Context, meditation *entity.Meditation) error {
	if err := repo.ready(); err != nil {
		return err
	}

	ref := repo.collection().NewDoc()
	if _, err := ref.Create(ctx, model.FromMeditationDomain(meditation)); err != nil {
		return dbError(err, "failed to create meditation")
	}
	meditation.ID = ref.ID

	return nil
}

// Update leaves createdAt untouched.
func (repo *meditationRepository) Update(ctx context.Context, meditation *entity.Meditation) error {
	if err := repo.ready(); err != nil {
		return err
	}

	_, err := repo.collection().Doc(meditation.ID).Update(ctx, []firestore.Update{
		{Path: "titulo", Value: meditation.Title},
		{Path: "categoria", Value: meditation.Category.Label()},
		{Path: "urlAudio", Value: meditation.AudioURL},
		{Path: "texto", Value: meditation.Text},
		{Path: "updatedAt", Value: meditation.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrMeditationNotFound
		}

		return dbError(err, "failed to update meditation")
	}

	return nil
}

func (repo *meditationRepository) Delete(ctx context.Context, id string) error {
	if err := repo.ready(); err != nil {
		return err
	}

	if _, err := repo.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrMeditationNotFound
		}

		return dbError(err, "failed to delete meditation")
	}

	return nil
}

func (repo *meditationRepository) Count(ctx context.Context) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}

	return count(ctx, repo.collection().Query, "failed to count meditations")
}

func (repo *meditationRepository) query(ctx context.Context, q firestore.Query, details string) ([]*entity.Meditation, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, dbError(err, details)
	}

	out := make([]*entity.Meditation, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.MeditationDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, dbError(err, details)
		}
		out = append(out, model.ToMeditationDomain(snap.Ref.ID, &doc))
	}

	return out, nil
}
