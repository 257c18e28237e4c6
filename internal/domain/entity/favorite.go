package entity

import (
	"slices"
	"time"
)

// Favorite is a meditation saved by a user, denormalised at the time it was saved.
type Favorite struct {
	MeditationID string
	Title        string
	Category     Category
	SavedAt      time.Time
}

// NewFavorite snapshots a meditation into a favorite entry.
func NewFavorite(m *Meditation, now time.Time) Favorite {
	return Favorite{
		MeditationID: m.ID,
		Title:        m.Title,
		Category:     m.Category,
		SavedAt:      now,
	}
}

// Favorites is the ordered list of favorites of one user.
type Favorites []Favorite

// Contains reports whether the list has an entry for meditationID.
func (fs Favorites) Contains(meditationID string) bool {
	return slices.ContainsFunc(fs, func(f Favorite) bool {
		return f.MeditationID == meditationID
	})
}

// Find returns the entry for meditationID.
func (fs Favorites) Find(meditationID string) (Favorite, bool) {
	i := slices.IndexFunc(fs, func(f Favorite) bool {
		return f.MeditationID == meditationID
	})
	if i < 0 {
		return Favorite{}, false
	}

	return fs[i], true
}

// Without returns the list minus every entry for meditationID.
func (fs Favorites) Without(meditationID string) Favorites {
	return slices.DeleteFunc(slices.Clone(fs), func(f Favorite) bool {
		return f.MeditationID == meditationID
	})
}

// NewestFirst returns a copy sorted by save date, most recent first.
func (fs Favorites) NewestFirst() Favorites {
	sorted := slices.Clone(fs)
	slices.SortStableFunc(sorted, func(a, b Favorite) int {
		return b.SavedAt.Compare(a.SavedAt)
	})

	return sorted
}
