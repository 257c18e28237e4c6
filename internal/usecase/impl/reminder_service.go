package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"manna/config"
	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	"manna/internal/domain/repository"
	"manna/internal/domain/service"
	"manna/internal/errors"
	"manna/internal/usecase"

	"go.uber.org/fx"
)

// Reminder kinds sent in the data payload of a push message.
const (
	ReminderKindKeepStreak    = "manter_sequencia"
	ReminderKindDailyPractice = "pratica_diaria"
	ReminderKindSuggestion    = "sugestao"
	ReminderKindNewContent    = "novo_conteudo"
)

const defaultReminderWindow = time.Minute

type reminderService struct {
	settingsRepo repository.NotificationSettingsRepository
	userRepo     repository.UserRepository
	notifier     service.NotificationService
	location     *time.Location
	window       time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	SettingsRepo repository.NotificationSettingsRepository
	UserRepo     repository.UserRepository
	Notifier     service.NotificationService
	Location     *time.Location
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService creates the usecase behind scheduled reminders and content announcements.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	window := defaultReminderWindow
	if params.Config != nil && params.Config.Reminder != nil && params.Config.Reminder.Interval > 0 {
		window = params.Config.Reminder.Interval
	}
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}

	return &reminderService{
		settingsRepo: params.SettingsRepo,
		userRepo:     params.UserRepo,
		notifier:     params.Notifier,
		location:     loc,
		window:       window,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type reminderMessage struct {
	kind  string
	title string
	body  string
	data  map[string]string
}

// composeReminder picks what to say to a recipient, or nil when no enabled kind applies.
func composeReminder(r *entity.ReminderRecipient, now time.Time) *reminderMessage {
	types := r.Notifications.Types
	streak := r.Journey.CurrentStreak(now)
	switch {
	case types.KeepStreak && streak > 0 && !r.Journey.PracticedOn(now):
		return &reminderMessage{
			kind:  ReminderKindKeepStreak,
			title: "Mantenha sua sequência",
			body:  fmt.Sprintf("Você está há %d dia(s) meditando. Não perca o ritmo hoje!", streak),
		}
	case types.DailyPractice:
		return &reminderMessage{
			kind:  ReminderKindDailyPractice,
			title: "Hora de meditar",
			body:  "Reserve alguns minutos para a sua prática de hoje.",
		}
	case types.Suggestions && len(r.Favorites) > 0:
		fav := r.Favorites.NewestFirst()[0]

		return &reminderMessage{
			kind:  ReminderKindSuggestion,
			title: "Sugestão para você",
			body:  fmt.Sprintf("Que tal ouvir \"%s\" novamente?", fav.Title),
			data:  map[string]string{"meditationId": fav.MeditationID},
		}
	default:
		return nil
	}
}

func (srv *reminderService) SendDueReminders(ctx context.Context) (*usecase.DeliveryReport, error) {
	now := srv.now().In(srv.location)

	recipients, err := srv.settingsRepo.FindActiveRecipients(ctx)
	if err != nil {
		return nil, storeError(err, nil, nil, "find reminder recipients")
	}

	report := &usecase.DeliveryReport{}
	for _, r := range recipients {
		slot, due := r.Notifications.DueSlot(now, srv.window)
		if !due || r.Notifications.AlreadySent(slot) || len(r.DeviceTokens) == 0 {
			continue
		}

		msg := composeReminder(r, now)
		if msg == nil {
			continue
		}

		report.Recipients++
		slotKey := slot.Format(entity.SlotLayout)
		data := map[string]string{"type": "reminder", "kind": msg.kind, "slot": slotKey}
		for k, v := range msg.data {
			data[k] = v
		}

		sent, failed, invalid, err := srv.notifier.SendBatchNotification(ctx, r.DeviceTokens, msg.title, msg.body, data)
		report.Sent += sent
		report.Failed += failed
		report.InvalidTokens += len(invalid)
		srv.dropInvalidTokens(ctx, r.UserID, invalid)
		if err != nil {
			if errors.Is(err, service.ErrMessagingUnavailable) {
				return report, err
			}
			srv.log(ctx).Error("Failed to send reminder", slog.String("uid", r.UserID), slog.Any("error", err))

			continue
		}

		if sent > 0 {
			if err := srv.settingsRepo.MarkNotified(ctx, r.UserID, slotKey); err != nil {
				srv.log(ctx).Warn("Failed to record reminder slot",
					slog.String("uid", r.UserID),
					slog.String("slot", slotKey),
					slog.Any("error", err),
				)
			}
		}
	}

	if report.Recipients > 0 {
		srv.log(ctx).Info("Reminders delivered",
			slog.Int("recipients", report.Recipients),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
		)
	}

	return report, nil
}

func (srv *reminderService) AnnounceContent(ctx context.Context, event *service.ContentEvent) (*usecase.DeliveryReport, error) {
	title, body := announcement(event)
	if title == "" {
		srv.log(ctx).Warn("Ignoring content event of unknown kind", slog.String("kind", string(event.Kind)))

		return &usecase.DeliveryReport{}, nil
	}

	recipients, err := srv.settingsRepo.FindNewContentRecipients(ctx)
	if err != nil {
		return nil, storeError(err, nil, nil, "find content recipients")
	}

	owners := make(map[string]string)
	tokens := make([]string, 0, len(recipients))
	for _, r := range recipients {
		for _, token := range r.DeviceTokens {
			if _, seen := owners[token]; seen {
				continue
			}
			owners[token] = r.UserID
			tokens = append(tokens, token)
		}
	}

	report := &usecase.DeliveryReport{Recipients: len(recipients)}
	if len(tokens) == 0 {
		return report, nil
	}

	data := map[string]string{
		"type":      "content",
		"kind":      ReminderKindNewContent,
		"content":   string(event.Kind),
		"contentId": event.ContentID,
	}
	sent, failed, invalid, err := srv.notifier.SendBatchNotification(ctx, tokens, title, body, data)
	report.Sent, report.Failed, report.InvalidTokens = sent, failed, len(invalid)

	byOwner := make(map[string][]string)
	for _, token := range invalid {
		byOwner[owners[token]] = append(byOwner[owners[token]], token)
	}
	for uid, stale := range byOwner {
		srv.dropInvalidTokens(ctx, uid, stale)
	}

	if err != nil {
		return report, errors.Wrap(err, "announce content")
	}

	srv.log(ctx).Info("Content announced",
		slog.String("kind", string(event.Kind)),
		slog.String("content_id", event.ContentID),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)

	return report, nil
}

func announcement(event *service.ContentEvent) (title, body string) {
	switch event.Kind {
	case service.ContentKindMeditation:
		return "Nova meditação disponível", fmt.Sprintf("Ouça agora: %s", event.Title)
	case service.ContentKindManna:
		if date, err := time.Parse(entity.DateLayout, event.Date); err == nil {
			return "Novo maná diário", fmt.Sprintf("O maná de %s já está disponível.", date.Format("02/01"))
		}

		return "Novo maná diário", "Uma nova palavra já está disponível."
	default:
		return "", ""
	}
}

func (srv *reminderService) dropInvalidTokens(ctx context.Context, userID string, tokens []string) {
	if userID == "" || len(tokens) == 0 {
		return
	}

	if err := srv.userRepo.RemoveDeviceTokens(ctx, userID, tokens...); err != nil {
		srv.log(ctx).Warn("Failed to remove invalid device tokens",
			slog.String("uid", userID),
			slog.Int("count", len(tokens)),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Removed invalid device tokens", slog.String("uid", userID), slog.Int("count", len(tokens)))
}
