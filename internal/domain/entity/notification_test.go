package entity

import (
	"testing"
	"time"

	"manna/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNotificationConfig(t *testing.T) {
	cfg := DefaultNotificationConfig()

	assert.True(t, cfg.Active)
	assert.Equal(t, []string{"07:00", "19:30"}, cfg.Times)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, cfg.Weekdays)
	assert.Equal(t, ReminderTypes{DailyPractice: true, NewMeditations: true, KeepStreak: true}, cfg.Types)
	assert.Equal(t, 15, cfg.LeadMinutes)
	assert.Empty(t, cfg.LastNotified)
}

func TestNotificationConfig_Normalize(t *testing.T) {
	cfg := NotificationConfig{
		Times:       []string{"19:30", "07:00", "19:30", "7:05"},
		Weekdays:    []int{6, 1, 1, 0},
		LeadMinutes: 120,
	}

	require.NoError(t, cfg.Normalize())
	assert.Equal(t, []string{"07:00", "07:05", "19:30"}, cfg.Times)
	assert.Equal(t, []int{0, 1, 6}, cfg.Weekdays)
}

func TestNotificationConfig_NormalizeRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  NotificationConfig
		want error
	}{
		{name: "bad time", cfg: NotificationConfig{Times: []string{"25:00"}}, want: ErrInvalidReminderTime},
		{name: "not a time", cfg: NotificationConfig{Times: []string{"manhã"}}, want: ErrInvalidReminderTime},
		{name: "weekday too big", cfg: NotificationConfig{Weekdays: []int{7}}, want: ErrInvalidWeekday},
		{name: "negative weekday", cfg: NotificationConfig{Weekdays: []int{-1}}, want: ErrInvalidWeekday},
		{name: "lead too long", cfg: NotificationConfig{LeadMinutes: 121}, want: ErrInvalidLeadTime},
		{name: "negative lead", cfg: NotificationConfig{LeadMinutes: -1}, want: ErrInvalidLeadTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Normalize()
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNotificationConfig_DueSlot(t *testing.T) {
	// 2024-05-10 is a Friday
	base := NotificationConfig{
		Active:      true,
		Times:       []string{"07:00", "19:30"},
		Weekdays:    []int{0, 1, 2, 3, 4, 5, 6},
		LeadMinutes: 15,
	}

	t.Run("fires at time minus lead", func(t *testing.T) {
		slot, ok := base.DueSlot(day("2024-05-10 06:45"), time.Minute)
		require.True(t, ok)
		assert.Equal(t, "2024-05-10T07:00", slot.Format(SlotLayout))
	})

	t.Run("nothing outside the window", func(t *testing.T) {
		_, ok := base.DueSlot(day("2024-05-10 06:47"), time.Minute)
		assert.False(t, ok)
	})

	t.Run("wider window catches a missed tick", func(t *testing.T) {
		slot, ok := base.DueSlot(day("2024-05-10 19:17"), 5*time.Minute)
		require.True(t, ok)
		assert.Equal(t, "2024-05-10T19:30", slot.Format(SlotLayout))
	})

	t.Run("weekday of the reminder is used", func(t *testing.T) {
		cfg := base
		cfg.Times = []string{"00:10"}
		cfg.Weekdays = []int{6} // Saturday
		slot, ok := cfg.DueSlot(day("2024-05-10 23:55"), time.Minute)
		require.True(t, ok)
		assert.Equal(t, "2024-05-11T00:10", slot.Format(SlotLayout))
	})

	t.Run("disabled weekday", func(t *testing.T) {
		cfg := base
		cfg.Weekdays = []int{1}
		_, ok := cfg.DueSlot(day("2024-05-10 06:45"), time.Minute)
		assert.False(t, ok)
	})

	t.Run("inactive", func(t *testing.T) {
		cfg := base
		cfg.Active = false
		_, ok := cfg.DueSlot(day("2024-05-10 06:45"), time.Minute)
		assert.False(t, ok)
	})

	t.Run("already sent", func(t *testing.T) {
		cfg := base
		cfg.LastNotified = "2024-05-10T07:00"
		slot, ok := cfg.DueSlot(day("2024-05-10 06:45"), time.Minute)
		require.True(t, ok)
		assert.True(t, cfg.AlreadySent(slot))
	})
}
