package firebase

import (
	"context"
	"testing"

	"manna/internal/domain/service"
	"manna/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestIdentityProvider_UnconfiguredIsUnavailable(t *testing.T) {
	p := NewIdentityProvider(&Clients{})
	ctx := context.Background()

	_, err := p.VerifyIDToken(ctx, "token")
	assert.ErrorIs(t, err, service.ErrIdentityUnavailable)

	_, err = p.CreateUser(ctx, "a@b.com", "secret1", "Ana")
	assert.ErrorIs(t, err, service.ErrIdentityUnavailable)

	assert.ErrorIs(t, p.UpdateDisplayName(ctx, "uid", "Ana"), service.ErrIdentityUnavailable)
}

func TestTranslateAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "malformed email", err: errors.New("malformed email string: \"ana\""), want: service.ErrInvalidEmail},
		{name: "short password", err: errors.New("password must be a string at least 6 characters long"), want: service.ErrWeakPassword},
		{name: "backend weak password", err: errors.New("WEAK_PASSWORD : Password should be at least 6 characters"), want: service.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateAuthError(tt.err), tt.want)
		})
	}

	other := errors.New("quota exceeded")
	got := translateAuthError(other)
	assert.ErrorIs(t, got, other)
	assert.False(t, errors.IsAny(got, service.ErrInvalidEmail, service.ErrWeakPassword, service.ErrEmailAlreadyExists))
}
