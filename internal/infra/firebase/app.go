// Package firebase builds the Firebase clients shared by the identity, storage and push adapters.
package firebase

import (
	"context"
	"log/slog"

	"manna/config"
	"manna/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Clients holds the Firebase SDK clients. Every field is nil when Firebase is not configured,
// and adapters report the service as unavailable instead of failing at startup.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	Messaging *messaging.Client
}

// Configured reports whether the clients were created.
func (c *Clients) Configured() bool {
	return c != nil && c.Firestore != nil
}

// Params defines the dependencies of NewClients.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewClients initialises the Firebase app. A missing project is logged as a
// configuration error and yields empty clients.
func NewClients(params Params) (*Clients, error) {
	cfg := params.Config.Firebase
	if !cfg.IsConfigured() {
		params.Logger.Error("Firebase is not configured, data and identity features are unavailable",
			slog.String("hint", "set FIREBASE_PROJECTID and FIREBASE_CREDENTIALSPATH"))

		return &Clients{}, nil
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create auth client")
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create firestore client")
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		_ = firestoreClient.Close()

		return nil, errors.Wrap(err, "create messaging client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(firestoreClient.Close())
		},
	})

	params.Logger.Info("Firebase clients initialized", slog.String("project_id", cfg.ProjectID))

	return &Clients{
		Auth:      authClient,
		Firestore: firestoreClient,
		Messaging: messagingClient,
	}, nil
}
