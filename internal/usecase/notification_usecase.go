package usecase

import (
	"context"

	"manna/internal/domain/entity"
	"manna/internal/domain/service"
)

// NotificationSettingsUsecase defines reminder preferences of the signed-in user
type NotificationSettingsUsecase interface {
	// GetSettings returns the stored preferences or the defaults
	GetSettings(ctx context.Context, userID string) (*entity.NotificationConfig, error)

	// UpdateSettings validates and overwrites the preferences
	UpdateSettings(ctx context.Context, session *entity.Session, cfg *entity.NotificationConfig) (*entity.NotificationConfig, error)
}

// DeliveryReport summarises one push fan-out
type DeliveryReport struct {
	Recipients    int
	Sent          int
	Failed        int
	InvalidTokens int
}

// ReminderUsecase defines the push jobs run by the notifier
type ReminderUsecase interface {
	// SendDueReminders delivers every reminder due at now
	SendDueReminders(ctx context.Context) (*DeliveryReport, error)

	// AnnounceContent tells interested users about newly published content
	AnnounceContent(ctx context.Context, event *service.ContentEvent) (*DeliveryReport, error)
}
