package model

import "manna/internal/domain/entity"

// NotificationDocument is the 'notificacoes' map on a user document.
type NotificationDocument struct {
	Active       bool                  `firestore:"ativo"`
	Times        []string              `firestore:"horarios"`
	Weekdays     []int                 `firestore:"diasSemana"`
	Types        ReminderTypesDocument `firestore:"tiposLembrete"`
	LeadMinutes  int                   `firestore:"antecedencia"`
	LastNotified string                `firestore:"ultimaNotificacao"`
}

// ReminderTypesDocument holds the per-kind reminder toggles.
type ReminderTypesDocument struct {
	DailyPractice  bool `firestore:"praticaDiaria"`
	NewMeditations bool `firestore:"novasMeditacoes"`
	KeepStreak     bool `firestore:"manterSequencia"`
	Suggestions    bool `firestore:"sugestoes"`
}

func (d *NotificationDocument) ToDomain() entity.NotificationConfig {
	return entity.NotificationConfig{
		Active:   d.Active,
		Times:    append([]string(nil), d.Times...),
		Weekdays: append([]int(nil), d.Weekdays...),
		Types: entity.ReminderTypes{
			DailyPractice:  d.Types.DailyPractice,
			NewMeditations: d.Types.NewMeditations,
			KeepStreak:     d.Types.KeepStreak,
			Suggestions:    d.Types.Suggestions,
		},
		LeadMinutes:  d.LeadMinutes,
		LastNotified: d.LastNotified,
	}
}

func FromNotificationDomain(c entity.NotificationConfig) *NotificationDocument {
	times := c.Times
	if times == nil {
		times = []string{}
	}
	days := c.Weekdays
	if days == nil {
		days = []int{}
	}

	return &NotificationDocument{
		Active:   c.Active,
		Times:    times,
		Weekdays: days,
		Types: ReminderTypesDocument{
			DailyPractice:  c.Types.DailyPractice,
			NewMeditations: c.Types.NewMeditations,
			KeepStreak:     c.Types.KeepStreak,
			Suggestions:    c.Types.Suggestions,
		},
		LeadMinutes:  c.LeadMinutes,
		LastNotified: c.LastNotified,
	}
}
