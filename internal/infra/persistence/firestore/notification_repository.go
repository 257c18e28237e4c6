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

const fieldNotifications = "notificacoes"

type notificationSettingsRepository struct {
	store
}

// NewNotificationSettingsRepository is the constructor for notificationSettingsRepository.
func NewNotificationSettingsRepository(clients *firebase.Clients) repository.NotificationSettingsRepository {
	return &notificationSettingsRepository{store{client: clients.Firestore}}
}

func (repo *notificationSettingsRepository) Find(ctx context.Context, userID string) (*entity.NotificationConfig, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	snap, err := repo.users().Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, dbError(err, "failed to load notification settings")
	}

	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, dbError(err, "failed to decode notification settings")
	}
	if doc.Notifications == nil {
		return nil, nil
	}

	cfg := doc.Notifications.ToDomain()

	return &cfg, nil
}

func (repo *notificationSettingsRepository) Save(ctx context.Context, defaults *entity.User, cfg entity.NotificationConfig) error {
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
			doc.Notifications = model.FromNotificationDomain(cfg)

			return tx.Create(ref, doc)
		}

		return tx.Update(ref, []firestore.Update{{Path: fieldNotifications, Value: model.FromNotificationDomain(cfg)}})
	})
	if err != nil {
		return dbError(err, "failed to save notification settings")
	}

	return nil
}

func (repo *notificationSettingsRepository) SaveIfMissing(ctx context.Context, userID string, cfg entity.NotificationConfig) error {
	if err := repo.ready(); err != nil {
		return err
	}

	ref := repo.users().Doc(userID)
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrUserNotFound
			}

			return errors.WithStack(err)
		}
		if _, err := snap.DataAt(fieldNotifications); err == nil {
			return nil
		}

		return tx.Update(ref, []firestore.Update{{Path: fieldNotifications, Value: model.FromNotificationDomain(cfg)}})
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.ErrUserNotFound
		}

		return dbError(err, "failed to store default notification settings")
	}

	return nil
}

func (repo *notificationSettingsRepository) FindActiveRecipients(ctx context.Context) ([]*entity.ReminderRecipient, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	q := repo.users().Where(fieldNotifications+".ativo", "==", true)

	return repo.recipients(ctx, q, "failed to list reminder recipients")
}

func (repo *notificationSettingsRepository) FindNewContentRecipients(ctx context.Context) ([]*entity.ReminderRecipient, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}

	q := repo.users().Where(fieldNotifications+".tiposLembrete.novasMeditacoes", "==", true)
	recipients, err := repo.recipients(ctx, q, "failed to list new content recipients")
	if err != nil {
		return nil, err
	}

	active := recipients[:0]
	for _, r := range recipients {
		if r.Notifications.Active {
			active = append(active, r)
		}
	}

	return active, nil
}

func (repo *notificationSettingsRepository) MarkNotified(ctx context.Context, userID, slot string) error {
	if err := repo.ready(); err != nil {
		return err
	}

	_, err := repo.users().Doc(userID).Update(ctx, []firestore.Update{
		{Path: fieldNotifications + ".ultimaNotificacao", Value: slot},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return dbError(err, "failed to mark reminder as sent")
	}

	return nil
}

func (repo *notificationSettingsRepository) recipients(ctx context.Context, q firestore.Query, details string) ([]*entity.ReminderRecipient, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, dbError(err, details)
	}

	out := make([]*entity.ReminderRecipient, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.UserDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, dbError(err, details)
		}
		if len(doc.FCMTokens) == 0 {
			continue
		}
		out = append(out, model.ToReminderRecipient(snap.Ref.ID, &doc))
	}

	return out, nil
}
