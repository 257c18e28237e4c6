package achievement

import (
	"testing"

	"manna/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ids(as []Achievement) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}

	return out
}

func TestCatalogOrderAndTiers(t *testing.T) {
	c := Catalog()

	assert.Len(t, c, 10)
	assert.Equal(t, "primeira-meditacao", c[0].ID)
	assert.Equal(t, "vinte-horas", c[9].ID)

	rank := map[Tier]int{TierBronze: 0, TierSilver: 1, TierGold: 2}
	for i := 1; i < len(c); i++ {
		assert.LessOrEqual(t, rank[c[i-1].Tier], rank[c[i].Tier], "tiers never go down in catalog order")
	}
}

func TestUnlockedAndUpcoming(t *testing.T) {
	tests := []struct {
		name         string
		journey      entity.Journey
		wantUnlocked []string
		wantUpcoming []string
	}{
		{
			name:         "new user",
			journey:      entity.Journey{},
			wantUnlocked: []string{},
			wantUpcoming: []string{"primeira-meditacao", "tres-dias", "dez-meditacoes"},
		},
		{
			name:         "a few days in",
			journey:      entity.Journey{ConsecutiveDays: 3, TotalCount: 12, TotalMinutes: 45},
			wantUnlocked: []string{"primeira-meditacao", "tres-dias", "dez-meditacoes"},
			wantUpcoming: []string{"hora-meditada", "sete-dias", "trinta-meditacoes"},
		},
		{
			name:         "boundaries are inclusive",
			journey:      entity.Journey{ConsecutiveDays: 7, TotalCount: 30, TotalMinutes: 300},
			wantUnlocked: []string{"primeira-meditacao", "tres-dias", "dez-meditacoes", "hora-meditada", "sete-dias", "trinta-meditacoes", "cinco-horas"},
			wantUpcoming: []string{"trinta-dias", "cem-meditacoes", "vinte-horas"},
		},
		{
			name:         "everything earned",
			journey:      entity.Journey{ConsecutiveDays: 30, TotalCount: 100, TotalMinutes: 1200},
			wantUnlocked: ids(Catalog()),
			wantUpcoming: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUnlocked, ids(Unlocked(tt.journey)))
			assert.Equal(t, tt.wantUpcoming, ids(Upcoming(tt.journey, DefaultUpcomingLimit)))
		})
	}
}

func TestUpcomingLimit(t *testing.T) {
	assert.Len(t, Upcoming(entity.Journey{}, 0), DefaultUpcomingLimit)
	assert.Len(t, Upcoming(entity.Journey{}, 5), 5)
	assert.Len(t, Upcoming(entity.Journey{}, 50), 10)
}

func TestUnlockedIsMonotonic(t *testing.T) {
	prev := 0
	j := entity.Journey{}
	for i := 0; i < 40; i++ {
		j.ConsecutiveDays++
		j.TotalCount += 3
		j.TotalMinutes += 35

		got := len(Unlocked(j))
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 10, prev)
}

func TestCatalogIsACopy(t *testing.T) {
	c := Catalog()
	c[0].Title = "changed"

	assert.Equal(t, "Primeiro Passo", Catalog()[0].Title)
}
