package entity

import "time"

// User is the stored profile document of a person, keyed by the identity UID.
type User struct {
	ID           string
	DisplayName  string
	Email        string
	Role         Role
	CreatedAt    time.Time
	DeviceTokens []string
}

// NewUser builds the default profile written the first time a user document is needed.
func NewUser(identity Identity, now time.Time) *User {
	return &User{
		ID:          identity.UID,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		Role:        RoleUser,
		CreatedAt:   now,
	}
}

// ReminderRecipient is a user with active reminders and the state needed to decide what to send.
type ReminderRecipient struct {
	UserID        string
	DisplayName   string
	DeviceTokens  []string
	Notifications NotificationConfig
	Journey       Journey
	Favorites     Favorites
}
