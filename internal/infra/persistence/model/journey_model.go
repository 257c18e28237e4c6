package model

import "manna/internal/domain/entity"

// JourneyDocument is the 'jornada' map on a user document.
type JourneyDocument struct {
	ConsecutiveDays int    `firestore:"diasConsecutivos"`
	MonthCount      int    `firestore:"meditacoesMes"`
	YearCount       int    `firestore:"meditacoesAno"`
	TotalCount      int    `firestore:"totalMeditacoes"`
	TotalMinutes    int    `firestore:"minutosMeditados"`
	LastSessionDate string `firestore:"ultimaMeditacao"`
}

func (d *JourneyDocument) ToDomain() entity.Journey {
	return entity.Journey{
		ConsecutiveDays: d.ConsecutiveDays,
		MonthCount:      d.MonthCount,
		YearCount:       d.YearCount,
		TotalCount:      d.TotalCount,
		TotalMinutes:    d.TotalMinutes,
		LastSessionDate: d.LastSessionDate,
	}
}

func FromJourneyDomain(j entity.Journey) *JourneyDocument {
	return &JourneyDocument{
		ConsecutiveDays: j.ConsecutiveDays,
		MonthCount:      j.MonthCount,
		YearCount:       j.YearCount,
		TotalCount:      j.TotalCount,
		TotalMinutes:    j.TotalMinutes,
		LastSessionDate: j.LastSessionDate,
	}
}
