package main

import (
	"context"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"manna/config"
	"manna/internal/delivery"
	"manna/internal/delivery/api"
	"manna/internal/delivery/api/middleware"
	"manna/internal/delivery/api/router/handler"
	"manna/internal/infra/firebase"
	logs "manna/internal/infra/log"
	"manna/internal/infra/persistence/firestore"
	"manna/internal/infra/pubsub"
	"manna/internal/infra/qrcode"
	"manna/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			contentLocation,
			firebase.NewClients,
		),
		pubsub.Module,
	)
}

// contentLocation is the timezone that decides which day "today" is.
func contentLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Content.Location()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewFavoriteRepository,
			firestore.NewJourneyRepository,
			firestore.NewMeditationRepository,
			firestore.NewMannaRepository,
			firestore.NewNotificationSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityProvider,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewDeviceService,
			impl.NewFavoriteService,
			impl.NewJourneyService,
			impl.NewMeditationService,
			impl.NewMannaService,
			impl.NewNotificationSettingsService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewMeditationHandler,
			handler.NewMannaHandler,
			handler.NewFavoriteHandler,
			handler.NewJourneyHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
