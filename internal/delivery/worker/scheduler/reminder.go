// Package scheduler runs the periodic reminder job inside the notifier.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"manna/config"
	"manna/internal/delivery"
	deliverycontext "manna/internal/delivery/context"
	"manna/internal/usecase"

	"go.uber.org/fx"
)

type reminderScheduler struct {
	enabled    bool
	interval   time.Duration
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
}

// ReminderSchedulerParams holds dependencies for the reminder scheduler
type ReminderSchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// NewReminderScheduler creates the delivery that sends due reminders on every tick.
func NewReminderScheduler(params ReminderSchedulerParams) delivery.Delivery {
	s := &reminderScheduler{
		enabled:    params.Cfg.Reminder.Enabled,
		interval:   params.Cfg.Reminder.Interval,
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
		stopCh:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.stop()

			return nil
		},
	})

	return s
}

// Serve ticks until the context is done or the application stops.
func (s *reminderScheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Reminder scheduler disabled")

		return nil
	}

	s.logger.Info("Starting reminder scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			s.logger.Info("Reminder scheduler stopped")

			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one pass. Failures are logged and the next tick tries again.
func (s *reminderScheduler) tick(ctx context.Context) {
	ctx, logger := deliverycontext.WithRequestScope(ctx, s.logger, deliverycontext.NewRequestID())

	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	report, err := s.reminderUC.SendDueReminders(ctx)
	if err != nil {
		logger.Error("[Scheduler] Reminder pass failed", slog.Any("error", err))

		return
	}

	if report.Recipients > 0 {
		logger.Info("[Scheduler] Reminder pass finished",
			slog.Int("recipients", report.Recipients),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
			slog.Int("invalid_tokens", report.InvalidTokens),
		)
	}
}

func (s *reminderScheduler) stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
