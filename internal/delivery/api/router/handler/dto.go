package handler

import (
	"time"

	"manna/internal/domain/achievement"
	"manna/internal/domain/entity"
	"manna/internal/usecase"
	"manna/internal/util"
)

// CategoryResponse exposes a category by slug and display label.
type CategoryResponse struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

func newCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{Slug: c.Slug(), Label: c.Label()}
}

// UserResponse is the profile returned by /me.
type UserResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
}

// MeditationResponse is a meditation as shown to clients.
type MeditationResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Category  CategoryResponse `json:"category"`
	AudioURL  string           `json:"audioUrl"`
	Text      string           `json:"text,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func newMeditationResponse(m *entity.Meditation) MeditationResponse {
	return MeditationResponse{
		ID:        m.ID,
		Title:     m.Title,
		Category:  newCategoryResponse(m.Category),
		AudioURL:  m.AudioURL,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func newMeditationResponses(ms []*entity.Meditation) []MeditationResponse {
	out := make([]MeditationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, newMeditationResponse(m))
	}

	return out
}

// MannaResponse is a daily manna entry with its scripture reference split out.
type MannaResponse struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	ScriptureText      string    `json:"scriptureText"`
	ScriptureReference string    `json:"scriptureReference"`
	Commentary         string    `json:"commentary"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func newMannaResponse(m *entity.DailyManna) MannaResponse {
	text, reference := m.Passage()

	return MannaResponse{
		ID:                 m.ID,
		Date:               m.Date,
		ScriptureText:      text,
		ScriptureReference: reference,
		Commentary:         m.Commentary,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FavoriteResponse is a saved meditation.
type FavoriteResponse struct {
	MeditationID string           `json:"meditationId"`
	Title        string           `json:"title"`
	Category     CategoryResponse `json:"category"`
	SavedAt      time.Time        `json:"savedAt"`
}

func newFavoriteResponse(f entity.Favorite) FavoriteResponse {
	return FavoriteResponse{
		MeditationID: f.MeditationID,
		Title:        f.Title,
		Category:     newCategoryResponse(f.Category),
		SavedAt:      f.SavedAt,
	}
}

// AchievementResponse is one entry of the achievement catalog.
type AchievementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
}

func newAchievementResponses(as []achievement.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(as))
	for _, a := range as {
		out = append(out, AchievementResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Tier:        string(a.Tier),
		})
	}

	return out
}

// JourneyResponse holds practice counters and the achievements derived from them.
type JourneyResponse struct {
	ConsecutiveDays int                   `json:"consecutiveDays"`
	MonthCount      int                   `json:"monthCount"`
	YearCount       int                   `json:"yearCount"`
	TotalCount      int                   `json:"totalCount"`
	TotalMinutes    int                   `json:"totalMinutes"`
	TotalTime       string                `json:"totalTime"`
	LastSessionDate string                `json:"lastSessionDate,omitempty"`
	Unlocked        []AchievementResponse `json:"unlocked"`
	Upcoming        []AchievementResponse `json:"upcoming"`
}

func newJourneyResponse(o *usecase.JourneyOverview) JourneyResponse {
	return JourneyResponse{
		ConsecutiveDays: o.Journey.ConsecutiveDays,
		MonthCount:      o.Journey.MonthCount,
		YearCount:       o.Journey.YearCount,
		TotalCount:      o.Journey.TotalCount,
		TotalMinutes:    o.Journey.TotalMinutes,
		TotalTime:       util.FormatDuration(time.Duration(o.Journey.TotalMinutes) * time.Minute),
		LastSessionDate: o.Journey.LastSessionDate,
		Unlocked:        newAchievementResponses(o.Unlocked),
		Upcoming:        newAchievementResponses(o.Upcoming),
	}
}

// ReminderTypesPayload toggles each kind of reminder.
type ReminderTypesPayload struct {
	DailyPractice  bool `json:"dailyPractice"`
	NewMeditations bool `json:"newMeditations"`
	KeepStreak     bool `json:"keepStreak"`
	Suggestions    bool `json:"suggestions"`
}

// NotificationSettingsPayload is the body of GET and PUT /settings/notifications.
type NotificationSettingsPayload struct {
	Active       bool                 `json:"active"`
	Times        []string             `json:"times" validate:"max=24,dive,hhmm"`
	Weekdays     []int                `json:"weekdays" validate:"max=7,dive,min=0,max=6"`
	Types        ReminderTypesPayload `json:"types"`
	LeadMinutes  int                  `json:"leadMinutes" validate:"min=0,max=120"`
	LastNotified string               `json:"lastNotified,omitempty"`
}

func newNotificationSettingsPayload(cfg *entity.NotificationConfig) NotificationSettingsPayload {
	times := cfg.Times
	if times == nil {
		times = []string{}
	}
	weekdays := cfg.Weekdays
	if weekdays == nil {
		weekdays = []int{}
	}

	return NotificationSettingsPayload{
		Active:   cfg.Active,
		Times:    times,
		Weekdays: weekdays,
		Types: ReminderTypesPayload{
			DailyPractice:  cfg.Types.DailyPractice,
			NewMeditations: cfg.Types.NewMeditations,
			KeepStreak:     cfg.Types.KeepStreak,
			Suggestions:    cfg.Types.Suggestions,
		},
		LeadMinutes:  cfg.LeadMinutes,
		LastNotified: cfg.LastNotified,
	}
}

func (p *NotificationSettingsPayload) toEntity() *entity.NotificationConfig {
	return &entity.NotificationConfig{
		Active:   p.Active,
		Times:    p.Times,
		Weekdays: p.Weekdays,
		Types: entity.ReminderTypes{
			DailyPractice:  p.Types.DailyPractice,
			NewMeditations: p.Types.NewMeditations,
			KeepStreak:     p.Types.KeepStreak,
			Suggestions:    p.Types.Suggestions,
		},
		LeadMinutes: p.LeadMinutes,
	}
}
