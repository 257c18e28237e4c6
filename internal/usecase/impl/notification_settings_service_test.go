package impl

import (
	"context"
	"testing"

	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	mockRepo "manna/internal/mocks/repository"
	"manna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationSettingsFixtures struct {
	service      usecase.NotificationSettingsUsecase
	settingsRepo *mockRepo.MockNotificationSettingsRepository
}

func createTestNotificationSettingsService(t *testing.T) notificationSettingsFixtures {
	settingsRepo := mockRepo.NewMockNotificationSettingsRepository(t)

	return notificationSettingsFixtures{
		service:      NewNotificationSettingsService(settingsRepo, discardLogger()),
		settingsRepo: settingsRepo,
	}
}

func TestNotificationSettingsService_GetSettings_Defaults(t *testing.T) {
	for name, stored := range map[string]error{"no preferences": nil, "no user": repository.ErrUserNotFound} {
		t.Run(name, func(t *testing.T) {
			fx := createTestNotificationSettingsService(t)
			ctx := context.Background()

			fx.settingsRepo.EXPECT().Find(ctx, "uid-1").Return(nil, stored)

			got, err := fx.service.GetSettings(ctx, "uid-1")
			require.NoError(t, err)
			assert.Equal(t, entity.DefaultNotificationConfig(), *got)
		})
	}
}

func TestNotificationSettingsService_GetSettings_Stored(t *testing.T) {
	fx := createTestNotificationSettingsService(t)
	ctx := context.Background()
	stored := &entity.NotificationConfig{Active: false, Times: []string{"06:00"}, Weekdays: []int{1}}

	fx.settingsRepo.EXPECT().Find(ctx, "uid-1").Return(stored, nil)

	got, err := fx.service.GetSettings(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestNotificationSettingsService_UpdateSettings_NormalisesAndKeepsLastNotified(t *testing.T) {
	fx := createTestNotificationSettingsService(t)
	ctx := context.Background()
	session := testSession(entity.RoleUser)

	fx.settingsRepo.EXPECT().Find(ctx, session.UID).
		Return(&entity.NotificationConfig{LastNotified: "2024-01-01T07:00"}, nil)
	fx.settingsRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.ID == session.UID }), entity.NotificationConfig{
			Active:       true,
			Times:        []string{"06:30", "21:00"},
			Weekdays:     []int{1, 3, 5},
			Types:        entity.ReminderTypes{DailyPractice: true},
			LeadMinutes:  10,
			LastNotified: "2024-01-01T07:00",
		}).
		Return(nil)

	got, err := fx.service.UpdateSettings(ctx, session, &entity.NotificationConfig{
		Active:       true,
		Times:        []string{"21:00", "06:30", "21:00"},
		Weekdays:     []int{5, 1, 3, 1},
		Types:        entity.ReminderTypes{DailyPractice: true},
		LeadMinutes:  10,
		LastNotified: "client supplied",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"06:30", "21:00"}, got.Times)
	assert.Equal(t, "2024-01-01T07:00", got.LastNotified)
}

func TestNotificationSettingsService_UpdateSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  entity.NotificationConfig
	}{
		{name: "bad time", cfg: entity.NotificationConfig{Times: []string{"25:00"}}},
		{name: "bad weekday", cfg: entity.NotificationConfig{Weekdays: []int{7}}},
		{name: "lead too long", cfg: entity.NotificationConfig{LeadMinutes: entity.MaxLeadMinutes + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationSettingsService(t)

			_, err := fx.service.UpdateSettings(context.Background(), testSession(entity.RoleUser), &tt.cfg)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidNotificationSettings)
		})
	}
}
