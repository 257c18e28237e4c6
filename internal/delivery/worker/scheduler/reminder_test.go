package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"manna/config"
	"manna/internal/errors"
	mockUC "manna/internal/mocks/usecase"
	"manna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, enabled bool, interval time.Duration) (*reminderScheduler, *mockUC.MockReminderUsecase, *fxtest.Lifecycle) {
	reminderUC := mockUC.NewMockReminderUsecase(t)
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Reminder: &config.ReminderConfig{Enabled: enabled, Interval: interval}}

	s := NewReminderScheduler(ReminderSchedulerParams{
		Lc:         lc,
		Cfg:        cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReminderUC: reminderUC,
	})

	return s.(*reminderScheduler), reminderUC, lc
}

func TestReminderScheduler_DisabledReturnsImmediately(t *testing.T) {
	s, _, _ := newTestScheduler(t, false, time.Minute)

	require.NoError(t, s.Serve(context.Background()))
}

func TestReminderScheduler_TicksUntilStopped(t *testing.T) {
	s, reminderUC, lc := newTestScheduler(t, true, 10*time.Millisecond)

	ticked := make(chan struct{}, 1)
	reminderUC.EXPECT().SendDueReminders(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.DeliveryReport, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}

			return &usecase.DeliveryReport{}, nil
		})

	lc.RequireStart()
	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never ticked")
	}

	lc.RequireStop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestReminderScheduler_FailedPassKeepsRunning(t *testing.T) {
	s, reminderUC, _ := newTestScheduler(t, true, 10*time.Millisecond)

	calls := make(chan struct{}, 2)
	reminderUC.EXPECT().SendDueReminders(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.DeliveryReport, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return nil, errors.New("store timeout")
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler stopped ticking after a failure")
		}
	}

	cancel()
	assert.NoError(t, <-done)
}
