// Package model holds the Firestore document shapes and their mapping to domain entities.
// Field names follow the documents already stored by the web client.
package model

import (
	"time"

	"manna/internal/domain/entity"
)

// UserDocument mirrors a document of the 'users' collection, keyed by identity UID.
type UserDocument struct {
	DisplayName   string                `firestore:"displayName"`
	Email         string                `firestore:"email"`
	Role          string                `firestore:"role"`
	CreatedAt     string                `firestore:"createdAt"` // ISO-8601, as written by the web client
	Favorites     []FavoriteDocument    `firestore:"favoritos,omitempty"`
	Journey       *JourneyDocument      `firestore:"jornada,omitempty"`
	Notifications *NotificationDocument `firestore:"notificacoes,omitempty"`
	FCMTokens     []string              `firestore:"fcmTokens,omitempty"`
}

// NewUserDocument builds the default document written for a user seen for the first time.
func NewUserDocument(user *entity.User) *UserDocument {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &UserDocument{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        entity.RoleUser.String(),
		CreatedAt:   createdAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToUserDomain maps a stored document onto the domain entity.
func ToUserDomain(id string, doc *UserDocument) *entity.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, doc.CreatedAt)

	return &entity.User{
		ID:           id,
		DisplayName:  doc.DisplayName,
		Email:        doc.Email,
		Role:         entity.ParseRole(doc.Role),
		CreatedAt:    createdAt,
		DeviceTokens: doc.FCMTokens,
	}
}

// ToReminderRecipient collects what the reminder jobs need from a user document.
func ToReminderRecipient(id string, doc *UserDocument) *entity.ReminderRecipient {
	recipient := &entity.ReminderRecipient{
		UserID:        id,
		DisplayName:   doc.DisplayName,
		DeviceTokens:  doc.FCMTokens,
		Notifications: entity.DefaultNotificationConfig(),
		Favorites:     ToFavoritesDomain(doc.Favorites),
	}
	if doc.Notifications != nil {
		recipient.Notifications = doc.Notifications.ToDomain()
	}
	if doc.Journey != nil {
		recipient.Journey = doc.Journey.ToDomain()
	}

	return recipient
}
