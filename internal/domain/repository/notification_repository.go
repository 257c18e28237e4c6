package repository

import (
	"context"

	"manna/internal/domain/entity"
)

// NotificationSettingsRepository manages reminder preferences and their delivery state.
type NotificationSettingsRepository interface {
	// Find returns the stored preferences, or nil when the user has none.
	// It returns ErrUserNotFound when the user document does not exist.
	Find(ctx context.Context, userID string) (*entity.NotificationConfig, error)

	// Save overwrites the preferences, creating the user document from defaults when missing.
	Save(ctx context.Context, defaults *entity.User, cfg entity.NotificationConfig) error

	// SaveIfMissing stores cfg only when the user has no preferences yet.
	SaveIfMissing(ctx context.Context, userID string, cfg entity.NotificationConfig) error

	// FindActiveRecipients lists users with active reminders.
	FindActiveRecipients(ctx context.Context) ([]*entity.ReminderRecipient, error)

	// FindNewContentRecipients lists users who asked to hear about new content.
	FindNewContentRecipients(ctx context.Context) ([]*entity.ReminderRecipient, error)

	// MarkNotified records the reminder slot last delivered to the user.
	MarkNotified(ctx context.Context, userID, slot string) error
}
