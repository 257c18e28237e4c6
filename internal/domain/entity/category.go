package entity

import "strings"

// Category groups meditations by theme.
type Category string

const (
	CategoryGratitude Category = "agradecer"
	CategoryAnxiety   Category = "ansiedade"
	CategoryFocus     Category = "foco"
	CategoryPeace     Category = "paz"
	CategorySleep     Category = "sono"
	CategoryWisdom    Category = "sabedoria"
)

var categoryLabels = map[Category]string{
	CategoryGratitude: "Gratidão",
	CategoryAnxiety:   "Ansiedade",
	CategoryFocus:     "Foco",
	CategoryPeace:     "Paz",
	CategorySleep:     "Sono",
	CategoryWisdom:    "Sabedoria",
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryGratitude,
		CategoryAnxiety,
		CategoryFocus,
		CategoryPeace,
		CategorySleep,
		CategoryWisdom,
	}
}

// Slug is the URL form of the category.
func (c Category) Slug() string {
	return string(c)
}

// Label is the display name, which is also what the document store keeps.
func (c Category) Label() string {
	return categoryLabels[c]
}

// IsValid checks if the Category is a known value.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]

	return ok
}

// ParseCategory accepts either a slug or a label, ignoring case and surrounding space.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	for _, c := range Categories() {
		if strings.EqualFold(s, c.Slug()) || strings.EqualFold(s, c.Label()) {
			return c, true
		}
	}

	return "", false
}
