package entity

import (
	"slices"
	"time"

	"manna/internal/errors"
)

const (
	// ReminderTimeLayout is the HH:MM format of reminder times.
	ReminderTimeLayout = "15:04"
	// SlotLayout identifies one delivered reminder.
	SlotLayout = "2006-01-02T15:04"

	MaxLeadMinutes = 120
)

var (
	ErrInvalidReminderTime = errors.New("reminder time must be HH:MM")
	ErrInvalidWeekday      = errors.New("weekday must be between 0 and 6")
	ErrInvalidLeadTime     = errors.New("lead time must be between 0 and 120 minutes")
)

// ReminderTypes toggles each kind of reminder.
type ReminderTypes struct {
	DailyPractice  bool
	NewMeditations bool
	KeepStreak     bool
	Suggestions    bool
}

// NotificationConfig holds the reminder preferences of a user.
type NotificationConfig struct {
	Active   bool
	Times    []string
	Weekdays []int
	Types    ReminderTypes
	// LeadMinutes is how long before each time the reminder is sent.
	LeadMinutes int
	// LastNotified is the slot of the last reminder delivered, managed by the server.
	LastNotified string
}

// DefaultNotificationConfig is used until a user saves preferences.
func DefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Active:   true,
		Times:    []string{"07:00", "19:30"},
		Weekdays: []int{0, 1, 2, 3, 4, 5, 6},
		Types: ReminderTypes{
			DailyPractice:  true,
			NewMeditations: true,
			KeepStreak:     true,
		},
		LeadMinutes: 15,
	}
}

// Normalize validates the config and sorts times and weekdays, dropping duplicates.
func (c *NotificationConfig) Normalize() error {
	times := make([]string, 0, len(c.Times))
	for _, raw := range c.Times {
		t, err := time.Parse(ReminderTimeLayout, raw)
		if err != nil {
			return errors.Wrapf(ErrInvalidReminderTime, "%q", raw)
		}
		times = append(times, t.Format(ReminderTimeLayout))
	}
	slices.Sort(times)
	c.Times = slices.Compact(times)

	days := slices.Clone(c.Weekdays)
	for _, d := range days {
		if d < 0 || d > 6 {
			return errors.Wrapf(ErrInvalidWeekday, "%d", d)
		}
	}
	slices.Sort(days)
	c.Weekdays = slices.Compact(days)

	if c.LeadMinutes < 0 || c.LeadMinutes > MaxLeadMinutes {
		return errors.Wrapf(ErrInvalidLeadTime, "%d", c.LeadMinutes)
	}

	return nil
}

// DueSlot returns the reminder whose send time (reminder time minus lead) falls in
// (now-window, now]. The weekday is checked against the day of the reminder itself.
// When several are due the latest one wins.
func (c NotificationConfig) DueSlot(now time.Time, window time.Duration) (time.Time, bool) {
	if !c.Active || window <= 0 {
		return time.Time{}, false
	}

	lead := time.Duration(c.LeadMinutes) * time.Minute
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		due   time.Time
		found bool
	)
	for _, raw := range c.Times {
		hm, err := time.Parse(ReminderTimeLayout, raw)
		if err != nil {
			continue
		}
		for offset := -1; offset <= 1; offset++ {
			day := midnight.AddDate(0, 0, offset)
			target := time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, now.Location())
			fire := target.Add(-lead)
			if !fire.After(now.Add(-window)) || fire.After(now) {
				continue
			}
			if !slices.Contains(c.Weekdays, int(target.Weekday())) {
				continue
			}
			if !found || target.After(due) {
				due, found = target, true
			}
		}
	}

	return due, found
}

// AlreadySent reports whether slot was the last reminder delivered.
func (c NotificationConfig) AlreadySent(slot time.Time) bool {
	return c.LastNotified == slot.Format(SlotLayout)
}
