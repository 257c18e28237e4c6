// Package achievement derives unlocked and upcoming achievements from journey counters.
package achievement

import "manna/internal/domain/entity"

// DefaultUpcomingLimit is how many locked achievements are suggested as next goals.
const DefaultUpcomingLimit = 3

// Tier ranks achievements from bronze to gold.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "prata"
	TierGold   Tier = "ouro"
)

// Achievement is one catalog entry.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Tier        Tier
	Unlocked    func(entity.Journey) bool
}

func totalAtLeast(n int) func(entity.Journey) bool {
	return func(j entity.Journey) bool { return j.TotalCount >= n }
}

func streakAtLeast(n int) func(entity.Journey) bool {
	return func(j entity.Journey) bool { return j.ConsecutiveDays >= n }
}

func minutesAtLeast(n int) func(entity.Journey) bool {
	return func(j entity.Journey) bool { return j.TotalMinutes >= n }
}

var catalog = []Achievement{
	{ID: "primeira-meditacao", Title: "Primeiro Passo", Description: "Completou sua primeira meditação", Tier: TierBronze, Unlocked: totalAtLeast(1)},
	{ID: "tres-dias", Title: "Consistência Inicial", Description: "Meditou por 3 dias consecutivos", Tier: TierBronze, Unlocked: streakAtLeast(3)},
	{ID: "dez-meditacoes", Title: "Dedicação Crescente", Description: "Completou 10 meditações", Tier: TierBronze, Unlocked: totalAtLeast(10)},
	{ID: "hora-meditada", Title: "Uma Hora de Paz", Description: "Acumulou 60 minutos de meditação", Tier: TierBronze, Unlocked: minutesAtLeast(60)},
	{ID: "sete-dias", Title: "Uma Semana Zen", Description: "Meditou por 7 dias consecutivos", Tier: TierSilver, Unlocked: streakAtLeast(7)},
	{ID: "trinta-meditacoes", Title: "Praticante Regular", Description: "Completou 30 meditações", Tier: TierSilver, Unlocked: totalAtLeast(30)},
	{ID: "cinco-horas", Title: "Imersão Profunda", Description: "Acumulou 5 horas de meditação", Tier: TierSilver, Unlocked: minutesAtLeast(300)},
	{ID: "trinta-dias", Title: "Mestre da Constância", Description: "Meditou por 30 dias consecutivos", Tier: TierGold, Unlocked: streakAtLeast(30)},
	{ID: "cem-meditacoes", Title: "Centenário da Paz", Description: "Completou 100 meditações", Tier: TierGold, Unlocked: totalAtLeast(100)},
	{ID: "vinte-horas", Title: "Iluminação Interior", Description: "Acumulou 20 horas de meditação", Tier: TierGold, Unlocked: minutesAtLeast(1200)},
}

// Catalog returns every achievement in catalog order.
func Catalog() []Achievement {
	return append([]Achievement(nil), catalog...)
}

// Unlocked returns the achievements earned by the journey, in catalog order.
func Unlocked(j entity.Journey) []Achievement {
	out := make([]Achievement, 0, len(catalog))
	for _, a := range catalog {
		if a.Unlocked(j) {
			out = append(out, a)
		}
	}

	return out
}

// Upcoming returns the first limit locked achievements in catalog order.
// A non-positive limit uses DefaultUpcomingLimit.
func Upcoming(j entity.Journey, limit int) []Achievement {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	out := make([]Achievement, 0, limit)
	for _, a := range catalog {
		if len(out) == limit {
			break
		}
		if !a.Unlocked(j) {
			out = append(out, a)
		}
	}

	return out
}
