package firestore

import (
	"context"

	"manna/internal/domain/constants"
	"manna/internal/domain/entity"
	"manna/internal/domain/repository"
	"manna/internal/errors"
	"manna/internal/infra/firebase"
	"manna/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

const fieldMannaDate = "data"

type mannaRepository struct {
	store
}

// NewMannaRepository is the constructor for mannaRepository.
func NewMannaRepository(clients *firebase.Clients) repository.MannaRepository {
	return &mannaRepository{store{client: clients.Firestore}}
}

func (repo *mannaRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionManna)
}

func (repo *mannaRepository) List(ctx context.Context) ([]*entity.DailyManna, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	snaps, err := repo.collection().OrderBy(fieldMannaDate, firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, dbError(err, "failed to list manna")
	}

	out := make([]*entity.DailyManna, 0, len(snaps))
	for _, snap := range snaps {
		m, err := decodeManna(snap)
		if err != nil {
			return nil, dbError(err, "failed to decode manna")
		}
		out = append(out, m)
	}

	return out, nil
}

func (repo *mannaRepository) FindByID(ctx context.Context, id string) (*entity.DailyManna, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMannaNotFound
		}

		return nil, dbError(err, "failed to find manna by id")
	}

	m, err := decodeManna(snap)
	if err != nil {
		return nil, dbError(err, "failed to decode manna")
	}

	return m, nil
}

func (repo *mannaRepository) FindByDate(ctx context.Context, date string) (*entity.DailyManna, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	snaps, err := repo.collection().Where(fieldMannaDate, "==", date).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, dbError(err, "failed to find manna by date")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrMannaNotFound
	}

	m, err := decodeManna(snaps[0])
	if err != nil {
		return nil, dbError(err, "failed to decode manna")
	}

	return m, nil
}

// Create checks the date and writes the entry in one transaction.
func (repo *mannaRepository) Create(ctx context.Context, manna *entity.DailyManna) error {
	if err := repo.ready(); err != nil {
		return err
	}

	ref := repo.collection().NewDoc()
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := repo.checkDateFree(tx, manna.Date, ""); err != nil {
			return err
		}

		return tx.Create(ref, model.FromMannaDomain(manna))
	})
	if err != nil {
		if errors.Is(err, repository.ErrMannaDateTaken) {
			return repository.ErrMannaDateTaken
		}

		return dbError(err, "failed to create manna")
	}
	manna.ID = ref.ID

	return nil
}

// Update leaves createdAt untouched.
func (repo *mannaRepository) Update(ctx context.Context, manna *entity.DailyManna) error {
	if err := repo.ready(); err != nil {
		return err
	}

	ref := repo.collection().Doc(manna.ID)
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if isNotFound(err) {
				return repository.ErrMannaNotFound
			}

			return errors.WithStack(err)
		}
		if err := repo.checkDateFree(tx, manna.Date, manna.ID); err != nil {
			return err
		}

		return tx.Update(ref, []firestore.Update{
			{Path: fieldMannaDate, Value: manna.Date},
			{Path: "textoBiblico", Value: manna.ScriptureText},
			{Path: "referenciaBiblica", Value: manna.ScriptureReference},
			{Path: "comentario", Value: manna.Commentary},
			{Path: "updatedAt", Value: manna.UpdatedAt},
		})
	})
	if err != nil {
		if errors.IsAny(err, repository.ErrMannaNotFound, repository.ErrMannaDateTaken) {
			return errors.WithStack(err)
		}

		return dbError(err, "failed to update manna")
	}

	return nil
}

func (repo *mannaRepository) Delete(ctx context.Context, id string) error {
	if err := repo.ready(); err != nil {
		return err
	}

	if _, err := repo.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrMannaNotFound
		}

		return dbError(err, "failed to delete manna")
	}

	return nil
}

func (repo *mannaRepository) Count(ctx context.Context) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}

	return count(ctx, repo.collection().Query, "failed to count manna")
}

// checkDateFree fails with ErrMannaDateTaken when an entry other than exceptID uses date.
func (repo *mannaRepository) checkDateFree(tx *firestore.Transaction, date, exceptID string) error {
	snaps, err := tx.Documents(repo.collection().Where(fieldMannaDate, "==", date)).GetAll()
	if err != nil {
		return errors.WithStack(err)
	}
	for _, snap := range snaps {
		if snap.Ref.ID != exceptID {
			return repository.ErrMannaDateTaken
		}
	}

	return nil
}

func decodeManna(snap *firestore.DocumentSnapshot) (*entity.DailyManna, error) {
	var doc model.MannaDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.WithStack(err)
	}

	return model.ToMannaDomain(snap.Ref.ID, &doc), nil
}
