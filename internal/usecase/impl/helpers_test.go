package impl

import (
	"io"
	"log/slog"
	"time"

	"manna/internal/domain/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testSession(role entity.Role) *entity.Session {
	return &entity.Session{
		Identity: entity.Identity{UID: "uid-1", DisplayName: "Maria", Email: "maria@example.com"},
		Role:     role,
	}
}
