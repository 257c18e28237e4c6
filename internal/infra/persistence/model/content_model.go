package model

import (
	"time"

	"manna/internal/domain/entity"
)

// MeditationDocument mirrors a document of the 'meditacoes' collection.
// The category is stored by its display label.
type MeditationDocument struct {
	Title     string    `firestore:"titulo"`
	Category  string    `firestore:"categoria"`
	AudioURL  string    `firestore:"urlAudio"`
	Text      string    `firestore:"texto"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty"`
}

func ToMeditationDomain(id string, d *MeditationDocument) *entity.Meditation {
	category, ok := entity.ParseCategory(d.Category)
	if !ok {
		category = entity.Category(d.Category)
	}

	return &entity.Meditation{
		ID:        id,
		Title:     d.Title,
		Category:  category,
		AudioURL:  d.AudioURL,
		Text:      d.Text,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromMeditationDomain(m *entity.Meditation) *MeditationDocument {
	return &MeditationDocument{
		Title:     m.Title,
		Category:  m.Category.Label(),
		AudioURL:  m.AudioURL,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MannaDocument mirrors a document of the 'mana_diario' collection.
type MannaDocument struct {
	Date               string    `firestore:"data"`
	ScriptureText      string    `firestore:"textoBiblico"`
	ScriptureReference string    `firestore:"referenciaBiblica,omitempty"`
	Commentary         string    `firestore:"comentario"`
	CreatedAt          time.Time `firestore:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedAt,omitempty"`
}

func ToMannaDomain(id string, d *MannaDocument) *entity.DailyManna {
	return &entity.DailyManna{
		ID:                 id,
		Date:               d.Date,
		ScriptureText:      d.ScriptureText,
		ScriptureReference: d.ScriptureReference,
		Commentary:         d.Commentary,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func FromMannaDomain(m *entity.DailyManna) *MannaDocument {
	return &MannaDocument{
		Date:               m.Date,
		ScriptureText:      m.ScriptureText,
		ScriptureReference: m.ScriptureReference,
		Commentary:         m.Commentary,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
