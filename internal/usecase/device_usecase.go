package usecase

import (
	"context"

	"manna/internal/domain/entity"
)

// DeviceUsecase defines the interface for push token management
type DeviceUsecase interface {
	// RegisterDevice stores an FCM token for the user. Reminder defaults are stored
	// alongside when the user has never saved preferences.
	RegisterDevice(ctx context.Context, session *entity.Session, fcmToken string) error

	// UnregisterDevice forgets an FCM token
	UnregisterDevice(ctx context.Context, session *entity.Session, fcmToken string) error
}
