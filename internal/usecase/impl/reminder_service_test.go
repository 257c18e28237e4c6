package impl

import (
	"context"
	"testing"
	"time"

	"manna/config"
	"manna/internal/domain/entity"
	"manna/internal/domain/repository"
	"manna/internal/domain/service"
	"manna/internal/errors"
	mockRepo "manna/internal/mocks/repository"
	mockSvc "manna/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderServiceFixtures struct {
	service      *reminderService
	settingsRepo *mockRepo.MockNotificationSettingsRepository
	userRepo     *mockRepo.MockUserRepository
	notifier     *mockSvc.MockNotificationService
}

// createTestReminderService runs the scheduler in UTC with a one minute window.
func createTestReminderService(t *testing.T, now time.Time) reminderServiceFixtures {
	settingsRepo := mockRepo.NewMockNotificationSettingsRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)

	srv := NewReminderService(ReminderServiceParams{
		SettingsRepo: settingsRepo,
		UserRepo:     userRepo,
		Notifier:     notifier,
		Location:     time.UTC,
		Config:       &config.Config{Reminder: &config.ReminderConfig{Interval: time.Minute}},
		Logger:       discardLogger(),
	}).(*reminderService)
	srv.now = fixedClock(now)

	return reminderServiceFixtures{
		service:      srv,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

func recipient(id string, cfg entity.NotificationConfig, journey entity.Journey, tokens ...string) *entity.ReminderRecipient {
	return &entity.ReminderRecipient{
		UserID:        id,
		DeviceTokens:  tokens,
		Notifications: cfg,
		Journey:       journey,
	}
}

func TestComposeReminder(t *testing.T) {
	now := time.Date(2024, 9, 10, 6, 45, 0, 0, time.UTC)
	all := entity.ReminderTypes{DailyPractice: true, KeepStreak: true, Suggestions: true}

	tests := []struct {
		name     string
		types    entity.ReminderTypes
		journey  entity.Journey
		favs     entity.Favorites
		expected string
	}{
		{name: "streak at risk", types: all, journey: entity.Journey{ConsecutiveDays: 4, LastSessionDate: "2024-09-09"}, expected: ReminderKindKeepStreak},
		{name: "already practiced today", types: all, journey: entity.Journey{ConsecutiveDays: 4, LastSessionDate: "2024-09-10"}, expected: ReminderKindDailyPractice},
		{name: "no streak", types: all, expected: ReminderKindDailyPractice},
		{name: "ended streak", types: all, journey: entity.Journey{ConsecutiveDays: 5, LastSessionDate: "2024-08-31"}, expected: ReminderKindDailyPractice},
		{name: "ended streak without daily practice", types: entity.ReminderTypes{KeepStreak: true}, journey: entity.Journey{ConsecutiveDays: 5, LastSessionDate: "2024-09-08"}},
		{
			name:     "suggestion only",
			types:    entity.ReminderTypes{Suggestions: true},
			favs:     entity.Favorites{{MeditationID: "old", SavedAt: now.Add(-48 * time.Hour)}, {MeditationID: "new", Title: "Sono tranquilo", SavedAt: now.Add(-time.Hour)}},
			expected: ReminderKindSuggestion,
		},
		{name: "suggestion without favorites", types: entity.ReminderTypes{Suggestions: true}},
		{name: "nothing enabled", types: entity.ReminderTypes{NewMeditations: true}, journey: entity.Journey{ConsecutiveDays: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &entity.ReminderRecipient{
				Notifications: entity.NotificationConfig{Types: tt.types},
				Journey:       tt.journey,
				Favorites:     tt.favs,
			}

			msg := composeReminder(r, now)
			if tt.expected == "" {
				assert.Nil(t, msg)

				return
			}
			require.NotNil(t, msg)
			assert.Equal(t, tt.expected, msg.kind)
			if tt.expected == ReminderKindSuggestion {
				assert.Equal(t, "new", msg.data["meditationId"])
				assert.Contains(t, msg.body, "Sono tranquilo")
			}
		})
	}
}

func TestReminderService_SendDueReminders(t *testing.T) {
	// 06:45 with a 15 minute lead fires the 07:00 reminder
	now := time.Date(2024, 9, 10, 6, 45, 20, 0, time.UTC)
	fx := createTestReminderService(t, now)
	ctx := context.Background()

	cfg := entity.DefaultNotificationConfig()
	sentAlready := cfg
	sentAlready.LastNotified = "2024-09-10T07:00"
	notDue := cfg
	notDue.Times = []string{"12:00"}

	fx.settingsRepo.EXPECT().FindActiveRecipients(ctx).Return([]*entity.ReminderRecipient{
		recipient("due", cfg, entity.Journey{}, "tok-a", "tok-stale"),
		recipient("sent", sentAlready, entity.Journey{}, "tok-b"),
		recipient("later", notDue, entity.Journey{}, "tok-c"),
		recipient("no-devices", cfg, entity.Journey{}),
	}, nil)

	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"tok-a", "tok-stale"}, "Hora de meditar", mock.Anything,
			mock.MatchedBy(func(data map[string]string) bool {
				return data["slot"] == "2024-09-10T07:00" && data["kind"] == ReminderKindDailyPractice
			})).
		Return(1, 1, []string{"tok-stale"}, nil)
	fx.userRepo.EXPECT().RemoveDeviceTokens(ctx, "due", "tok-stale").Return(nil)
	fx.settingsRepo.EXPECT().MarkNotified(ctx, "due", "2024-09-10T07:00").Return(nil)

	report, err := fx.service.SendDueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Recipients)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.InvalidTokens)
}

func TestReminderService_SendDueReminders_SendFailureContinues(t *testing.T) {
	now := time.Date(2024, 9, 10, 6, 45, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)
	ctx := context.Background()
	cfg := entity.DefaultNotificationConfig()

	fx.settingsRepo.EXPECT().FindActiveRecipients(ctx).Return([]*entity.ReminderRecipient{
		recipient("u1", cfg, entity.Journey{}, "tok-1"),
		recipient("u2", cfg, entity.Journey{}, "tok-2"),
	}, nil)
	fx.notifier.EXPECT().SendBatchNotification(ctx, []string{"tok-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, nil, errors.New("fcm timeout"))
	fx.notifier.EXPECT().SendBatchNotification(ctx, []string{"tok-2"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)
	fx.settingsRepo.EXPECT().MarkNotified(ctx, "u2", "2024-09-10T07:00").Return(nil)

	report, err := fx.service.SendDueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Recipients)
	assert.Equal(t, 1, report.Sent)
}

func TestReminderService_SendDueReminders_StoreUnavailable(t *testing.T) {
	fx := createTestReminderService(t, time.Now())
	ctx := context.Background()

	fx.settingsRepo.EXPECT().FindActiveRecipients(ctx).Return(nil, repository.ErrStoreUnavailable)

	_, err := fx.service.SendDueReminders(ctx)
	require.Error(t, err)
}

func TestReminderService_AnnounceContent(t *testing.T) {
	fx := createTestReminderService(t, time.Now())
	ctx := context.Background()

	fx.settingsRepo.EXPECT().FindNewContentRecipients(ctx).Return([]*entity.ReminderRecipient{
		{UserID: "u1", DeviceTokens: []string{"t1", "shared"}},
		{UserID: "u2", DeviceTokens: []string{"shared", "t2"}},
	}, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"t1", "shared", "t2"}, "Nova meditação disponível", "Ouça agora: Paz interior",
			mock.MatchedBy(func(data map[string]string) bool { return data["contentId"] == "m1" })).
		Return(2, 1, []string{"t2"}, nil)
	fx.userRepo.EXPECT().RemoveDeviceTokens(ctx, "u2", "t2").Return(nil)

	report, err := fx.service.AnnounceContent(ctx, &service.ContentEvent{
		Kind:      service.ContentKindMeditation,
		ContentID: "m1",
		Title:     "Paz interior",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Recipients)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.InvalidTokens)
}

func TestReminderService_AnnounceContent_NoRecipients(t *testing.T) {
	fx := createTestReminderService(t, time.Now())
	ctx := context.Background()

	fx.settingsRepo.EXPECT().FindNewContentRecipients(ctx).Return(nil, nil)

	report, err := fx.service.AnnounceContent(ctx, &service.ContentEvent{Kind: service.ContentKindManna, Date: "2024-09-10"})
	require.NoError(t, err)
	assert.Zero(t, report.Sent)
}

func TestReminderService_AnnounceContent_UnknownKind(t *testing.T) {
	fx := createTestReminderService(t, time.Now())

	report, err := fx.service.AnnounceContent(context.Background(), &service.ContentEvent{Kind: "podcast"})
	require.NoError(t, err)
	assert.Zero(t, report.Recipients)
}

func TestReminderService_AnnounceContent_SendFailure(t *testing.T) {
	fx := createTestReminderService(t, time.Now())
	ctx := context.Background()

	fx.settingsRepo.EXPECT().FindNewContentRecipients(ctx).Return([]*entity.ReminderRecipient{
		{UserID: "u1", DeviceTokens: []string{"t1"}},
	}, nil)
	fx.notifier.EXPECT().SendBatchNotification(ctx, []string{"t1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, service.ErrMessagingUnavailable)

	_, err := fx.service.AnnounceContent(ctx, &service.ContentEvent{Kind: service.ContentKindManna, ContentID: "d1", Date: "2024-09-10"})
	assert.ErrorIs(t, err, service.ErrMessagingUnavailable)
}
