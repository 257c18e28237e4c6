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
	"manna/internal/errors"
	"manna/internal/usecase"

	"go.uber.org/fx"
)

type mannaService struct {
	mannaRepo repository.MannaRepository
	publisher service.EventPublisher
	location  *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// MannaServiceParams holds dependencies for MannaService, injected by Fx.
type MannaServiceParams struct {
	fx.In

	MannaRepo repository.MannaRepository
	Publisher service.EventPublisher
	Location  *time.Location
	Logger    *slog.Logger
}

// NewMannaService creates the usecase for the daily devotional.
func NewMannaService(params MannaServiceParams) usecase.MannaUsecase {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}

	return &mannaService{
		mannaRepo: params.MannaRepo,
		publisher: params.Publisher,
		location:  loc,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *mannaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mannaService) Today(ctx context.Context) (*entity.DailyManna, bool, error) {
	today := srv.now().In(srv.location).Format(entity.DateLayout)

	manna, err := srv.mannaRepo.FindByDate(ctx, today)
	switch {
	case errors.Is(err, repository.ErrMannaNotFound):
		srv.log(ctx).Debug("No manna published for today", slog.String("date", today))

		return nil, false, nil
	case err != nil:
		return nil, false, storeError(err, nil, nil, "find today's manna")
	}

	return manna, true, nil
}

func (srv *mannaService) ListManna(ctx context.Context) ([]*entity.DailyManna, error) {
	entries, err := srv.mannaRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, nil, nil, "list manna")
	}
	if entries == nil {
		entries = []*entity.DailyManna{}
	}

	return entries, nil
}

func (srv *mannaService) GetManna(ctx context.Context, id string) (*entity.DailyManna, error) {
	manna, err := srv.mannaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrMannaNotFound, domainerrors.ErrMannaNotFound, "find manna")
	}

	return manna, nil
}

func (srv *mannaService) CreateManna(ctx context.Context, input *usecase.MannaInput) (*entity.DailyManna, error) {
	manna, err := mannaFromInput(input)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	manna.CreatedAt = now
	manna.UpdatedAt = now
	if err := srv.mannaRepo.Create(ctx, manna); err != nil {
		return nil, mannaWriteError(err, manna.Date, "create manna")
	}

	srv.log(ctx).Info("Manna created", slog.String("manna_id", manna.ID), slog.String("date", manna.Date))
	publishContentEvent(ctx, srv.publisher, srv.log(ctx), &service.ContentEvent{
		Kind:      service.ContentKindManna,
		ContentID: manna.ID,
		Title:     manna.ScriptureReference,
		Date:      manna.Date,
	})

	return manna, nil
}

func (srv *mannaService) UpdateManna(ctx context.Context, id string, input *usecase.MannaInput) (*entity.DailyManna, error) {
	manna, err := mannaFromInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := srv.GetManna(ctx, id)
	if err != nil {
		return nil, err
	}

	manna.ID = existing.ID
	manna.CreatedAt = existing.CreatedAt
	manna.UpdatedAt = srv.now()
	if err := srv.mannaRepo.Update(ctx, manna); err != nil {
		return nil, mannaWriteError(err, manna.Date, "update manna")
	}

	srv.log(ctx).Info("Manna updated", slog.String("manna_id", id))

	return manna, nil
}

func (srv *mannaService) DeleteManna(ctx context.Context, id string) error {
	if err := srv.mannaRepo.Delete(ctx, id); err != nil {
		return storeError(err, repository.ErrMannaNotFound, domainerrors.ErrMannaNotFound, "delete manna")
	}

	srv.log(ctx).Info("Manna deleted", slog.String("manna_id", id))

	return nil
}

func mannaWriteError(err error, date, details string) error {
	if errors.Is(err, repository.ErrMannaDateTaken) {
		return domainerrors.ErrMannaDateConflict.WithDetails(date)
	}

	return storeError(err, repository.ErrMannaNotFound, domainerrors.ErrMannaNotFound, details)
}

func mannaFromInput(input *usecase.MannaInput) (*entity.DailyManna, error) {
	date := strings.TrimSpace(input.Date)
	text := strings.TrimSpace(input.ScriptureText)
	commentary := strings.TrimSpace(input.Commentary)
	if date == "" || text == "" || commentary == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !entity.IsValidDate(date) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date")
	}

	manna := &entity.DailyManna{
		Date:               date,
		ScriptureText:      text,
		ScriptureReference: strings.TrimSpace(input.ScriptureReference),
		Commentary:         commentary,
	}
	if manna.ScriptureReference == "" {
		manna.ScriptureText, manna.ScriptureReference = entity.SplitReference(text)
	}

	return manna, nil
}
