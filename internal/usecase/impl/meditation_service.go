package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "manna/internal/delivery/context"
	"manna/internal/domain/entity"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/domain/service"
	"manna/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type meditationService struct {
	meditationRepo repository.MeditationRepository
	publisher      service.EventPublisher
	qrCode         service.QRCodeService
	now            func() time.Time
	logger         *slog.Logger
}

// MeditationServiceParams holds dependencies for MeditationService, injected by Fx.
type MeditationServiceParams struct {
	fx.In

	MeditationRepo repository.MeditationRepository
	Publisher      service.EventPublisher
	QRCode         service.QRCodeService
	Logger         *slog.Logger
}

// NewMeditationService creates the usecase for browsing and editing meditations.
func NewMeditationService(params MeditationServiceParams) usecase.MeditationUsecase {
	return &meditationService{
		meditationRepo: params.MeditationRepo,
		publisher:      params.Publisher,
		qrCode:         params.QRCode,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *meditationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *meditationService) ListMeditations(ctx context.Context, category string) ([]*entity.Meditation, error) {
	var (
		meditations []*entity.Meditation
		err         error
	)
	if category == "" {
		meditations, err = srv.meditationRepo.List(ctx)
	} else {
		cat, ok := entity.ParseCategory(category)
		if !ok {
			return nil, domainerrors.ErrInvalidCategory.WithDetails(category)
		}
		meditations, err = srv.meditationRepo.ListByCategory(ctx, cat)
	}
	if err != nil {
		return nil, storeError(err, nil, nil, "list meditations")
	}
	if meditations == nil {
		meditations = []*entity.Meditation{}
	}

	return meditations, nil
}

func (srv *meditationService) GetMeditation(ctx context.Context, id string) (*entity.Meditation, error) {
	meditation, err := srv.meditationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrMeditationNotFound, domainerrors.ErrMeditationNotFound, "find meditation")
	}

	return meditation, nil
}

func (srv *meditationService) CreateMeditation(ctx context.Context, input *usecase.MeditationInput) (*entity.Meditation, error) {
	meditation, err := meditationFromInput(input)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	meditation.CreatedAt = now
	meditation.UpdatedAt = now
	if err := srv.meditationRepo.Create(ctx, meditation); err != nil {
		return nil, storeError(err, nil, nil, "create meditation")
	}

	srv.log(ctx).Info("Meditation created", slog.String("meditation_id", meditation.ID))
	srv.publish(ctx, &service.ContentEvent{
		Kind:      service.ContentKindMeditation,
		ContentID: meditation.ID,
		Title:     meditation.Title,
		Category:  meditation.Category.Slug(),
	})

	return meditation, nil
}

func (srv *meditationService) UpdateMeditation(ctx context.Context, id string, input *usecase.MeditationInput) (*entity.Meditation, error) {
	meditation, err := meditationFromInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := srv.GetMeditation(ctx, id)
	if err != nil {
		return nil, err
	}

	meditation.ID = existing.ID
	meditation.CreatedAt = existing.CreatedAt
	meditation.UpdatedAt = srv.now()
	if err := srv.meditationRepo.Update(ctx, meditation); err != nil {
		return nil, storeError(err, repository.ErrMeditationNotFound, domainerrors.ErrMeditationNotFound, "update meditation")
	}

	srv.log(ctx).Info("Meditation updated", slog.String("meditation_id", id))

	return meditation, nil
}

func (srv *meditationService) DeleteMeditation(ctx context.Context, id string) error {
	if err := srv.meditationRepo.Delete(ctx, id); err != nil {
		return storeError(err, repository.ErrMeditationNotFound, domainerrors.ErrMeditationNotFound, "delete meditation")
	}

	srv.log(ctx).Info("Meditation deleted", slog.String("meditation_id", id))

	return nil
}

func (srv *meditationService) ShareMeditation(ctx context.Context, id string) (*usecase.ShareCode, error) {
	meditation, err := srv.GetMeditation(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateMeditationQR(meditation)
	if err != nil {
		srv.log(ctx).Error("Failed to render QR code", slog.String("meditation_id", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return &usecase.ShareCode{URL: srv.qrCode.ShareURL(meditation), PNG: png}, nil
}

// publish announces new content. Delivery is best effort and never fails the request.
func (srv *meditationService) publish(ctx context.Context, event *service.ContentEvent) {
	publishContentEvent(ctx, srv.publisher, srv.log(ctx), event)
}

func publishContentEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.ContentEvent) {
	if publisher == nil {
		return
	}

	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := publisher.PublishContentEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish content event",
			slog.String("kind", string(event.Kind)),
			slog.String("content_id", event.ContentID),
			slog.Any("error", err),
		)
	}
}

func meditationFromInput(input *usecase.MeditationInput) (*entity.Meditation, error) {
	title := strings.TrimSpace(input.Title)
	audioURL := strings.TrimSpace(input.AudioURL)
	if title == "" || input.Category == "" || audioURL == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(input.Category)
	}
	if !entity.IsAudioURL(audioURL) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("audioUrl")
	}

	return &entity.Meditation{
		Title:    title,
		Category: category,
		AudioURL: audioURL,
		Text:     strings.TrimSpace(input.Text),
	}, nil
}
