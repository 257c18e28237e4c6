package firebase

import (
	"context"
	"strings"

	"manna/internal/domain/entity"
	"manna/internal/domain/service"
	"manna/internal/errors"

	"firebase.google.com/go/v4/auth"
)

type identityProvider struct {
	client *auth.Client
}

// NewIdentityProvider adapts Firebase Authentication to service.IdentityProvider.
func NewIdentityProvider(clients *Clients) service.IdentityProvider {
	return &identityProvider{client: clients.Auth}
}

func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	if p.client == nil {
		return nil, service.ErrIdentityUnavailable
	}

	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	identity := &entity.Identity{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}

func (p *identityProvider) CreateUser(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	if p.client == nil {
		return nil, service.ErrIdentityUnavailable
	}

	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if name := strings.TrimSpace(displayName); name != "" {
		params = params.DisplayName(name)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, translateAuthError(err)
	}

	return &entity.Identity{
		UID:         record.UID,
		DisplayName: record.DisplayName,
		Email:       record.Email,
	}, nil
}

func (p *identityProvider) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	if p.client == nil {
		return service.ErrIdentityUnavailable
	}

	_, err := p.client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).DisplayName(displayName))
	if err != nil {
		return translateAuthError(err)
	}

	return nil
}

// translateAuthError maps admin SDK failures onto the provider sentinels.
// The SDK reports malformed e-mails and short passwords as plain argument errors.
func translateAuthError(err error) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return errors.Wrap(service.ErrEmailAlreadyExists, err.Error())
	case auth.IsUserNotFound(err):
		return errors.Wrap(service.ErrIdentityNotFound, err.Error())
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email must be a non-empty string") || strings.Contains(msg, "malformed email"),
		strings.Contains(msg, "invalid_email"):
		return errors.Wrap(service.ErrInvalidEmail, err.Error())
	case strings.Contains(msg, "password must be a string at least 6 characters"),
		strings.Contains(msg, "weak_password"):
		return errors.Wrap(service.ErrWeakPassword, err.Error())
	}

	return errors.Wrap(err, "firebase auth")
}
