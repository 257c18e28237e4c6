package firestore

import (
	"context"
	"os"
	"testing"
	"time"

	"manna/internal/domain/entity"
	"manna/internal/domain/repository"
	"manna/internal/infra/firebase"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClients connects to the Firestore emulator or skips the test.
func newEmulatorClients(t *testing.T) *firebase.Clients {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "manna-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return &firebase.Clients{Firestore: client}
}

func newTestUser() *entity.User {
	return entity.NewUser(entity.Identity{UID: uuid.NewString(), DisplayName: "Ana", Email: "ana@example.com"}, time.Now())
}

func TestRepositories_UnconfiguredStore(t *testing.T) {
	clients := &firebase.Clients{}
	ctx := context.Background()

	_, err := NewUserRepository(clients).FindByID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = NewFavoriteRepository(clients).List(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = NewMeditationRepository(clients).List(ctx)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = NewMannaRepository(clients).FindByDate(ctx, "2024-05-10")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, _, err = NewJourneyRepository(clients).Find(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = NewNotificationSettingsRepository(clients).FindActiveRecipients(ctx)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestFavoriteRepository_Emulator(t *testing.T) {
	clients := newEmulatorClients(t)
	repo := NewFavoriteRepository(clients)
	ctx := context.Background()
	user := newTestUser()

	favs, err := repo.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)

	_, err = repo.Remove(ctx, user.ID, "m1")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	fav := entity.Favorite{MeditationID: "m1", Title: "Respirar", Category: entity.CategoryPeace, SavedAt: time.Now()}
	_, added, err := repo.Add(ctx, user, fav)
	require.NoError(t, err)
	assert.True(t, added)

	again := fav
	again.SavedAt = fav.SavedAt.Add(time.Hour)
	stored, added, err := repo.Add(ctx, user, again)
	require.NoError(t, err)
	assert.False(t, added)
	assert.WithinDuration(t, fav.SavedAt, stored.SavedAt, time.Millisecond)

	favs, err = repo.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, entity.CategoryPeace, favs[0].Category)

	removed, err := repo.Remove(ctx, user.ID, "m1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, user.ID, "m1")
	require.NoError(t, err)
	assert.False(t, removed)

	storedUser, err := NewUserRepository(clients).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, storedUser.Role)
	assert.Equal(t, "Ana", storedUser.DisplayName)
}

func TestMannaRepository_Emulator_OneEntryPerDate(t *testing.T) {
	repo := NewMannaRepository(newEmulatorClients(t))
	ctx := context.Background()
	date := "2099-01-01"
	if stale, err := repo.FindByDate(ctx, date); err == nil {
		require.NoError(t, repo.Delete(ctx, stale.ID))
	}

	first := &entity.DailyManna{Date: date, ScriptureText: "Texto", Commentary: "Comentário", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))
	t.Cleanup(func() { _ = repo.Delete(ctx, first.ID) })

	err := repo.Create(ctx, &entity.DailyManna{Date: date, ScriptureText: "Outro"})
	assert.ErrorIs(t, err, repository.ErrMannaDateTaken)

	found, err := repo.FindByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	first.Commentary = "Atualizado"
	require.NoError(t, repo.Update(ctx, first))

	err = repo.Update(ctx, &entity.DailyManna{ID: "missing-" + uuid.NewString(), Date: "2099-12-31"})
	assert.ErrorIs(t, err, repository.ErrMannaNotFound)
}

func TestJourneyRepository_Emulator(t *testing.T) {
	clients := newEmulatorClients(t)
	ctx := context.Background()
	user := newTestUser()

	_, err := NewUserRepository(clients).EnsureExists(ctx, user)
	require.NoError(t, err)

	repo := NewJourneyRepository(clients)
	_, stored, err := repo.Find(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored)

	at := time.Date(2024, 5, 10, 7, 0, 0, 0, time.UTC)
	j, err := repo.Update(ctx, user.ID, func(j *entity.Journey) error {
		j.RecordSession(at, 12)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, j.TotalCount)

	got, stored, err := repo.Find(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, j, got)
}
