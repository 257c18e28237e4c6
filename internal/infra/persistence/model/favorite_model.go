package model

import (
	"time"

	"manna/internal/domain/entity"
)

// FavoriteDocument is one element of the 'favoritos' array on a user document.
type FavoriteDocument struct {
	ID       string `firestore:"id"`
	Title    string `firestore:"titulo"`
	Category string `firestore:"categoria"`
	SavedAt  string `firestore:"dataSalvo"` // ISO-8601
}

// FromFavoriteDomain maps a favorite for storage.
func FromFavoriteDomain(f entity.Favorite) FavoriteDocument {
	return FavoriteDocument{
		ID:       f.MeditationID,
		Title:    f.Title,
		Category: f.Category.Slug(),
		SavedAt:  f.SavedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToFavoritesDomain maps the stored array, keeping its order.
func ToFavoritesDomain(docs []FavoriteDocument) entity.Favorites {
	out := make(entity.Favorites, 0, len(docs))
	for _, d := range docs {
		savedAt, _ := time.Parse(time.RFC3339Nano, d.SavedAt)
		category, ok := entity.ParseCategory(d.Category)
		if !ok {
			category = entity.Category(d.Category)
		}
		out = append(out, entity.Favorite{
			MeditationID: d.ID,
			Title:        d.Title,
			Category:     category,
			SavedAt:      savedAt,
		})
	}

	return out
}

// FromFavoritesDomain maps a whole list for storage.
func FromFavoritesDomain(favs entity.Favorites) []FavoriteDocument {
	out := make([]FavoriteDocument, 0, len(favs))
	for _, f := range favs {
		out = append(out, FromFavoriteDomain(f))
	}

	return out
}
